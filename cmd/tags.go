package cmd

import (
	"fmt"

	"progress-tracker/core/library"
	"progress-tracker/core/output"
	"progress-tracker/core/rpc"
	"progress-tracker/feature/tags"

	"github.com/spf13/cobra"
)

var tagFilter string

// tagsCmd represents the tags command
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Inspect and edit progress tags",
}

func tagService() (*tags.Service, func(), error) {
	cfg, logg, err := loadCLI()
	if err != nil {
		return nil, nil, err
	}
	svc := tags.NewService(rpc.NewBackend(rpc.NewHTTPCaller(cfg.RPC)), logg)
	return svc, func() { _ = logg.Sync() }, nil
}

func parseAppIDArg(raw string) (string, error) {
	appid, ok := library.ParseAppID(raw)
	if !ok {
		return "", fmt.Errorf("invalid appid %q", raw)
	}
	return appid, nil
}

var tagsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the number of games per tag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done, err := tagService()
		if err != nil {
			return err
		}
		defer done()

		stats, err := svc.Stats(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(stats)
		}

		fmt.Println(output.Title("Tag Statistics"))
		rows := []struct {
			tag   library.Tag
			count int
		}{
			{library.TagMastered, stats.Mastered},
			{library.TagCompleted, stats.Completed},
			{library.TagInProgress, stats.InProgress},
			{library.TagBacklog, stats.Backlog},
			{library.TagDropped, stats.Dropped},
		}
		for _, r := range rows {
			fmt.Printf("  %5d  %s\n", r.count, output.FormatTag(r.tag))
		}
		fmt.Printf("  %5d  %s\n", stats.Total, "Total")
		return nil
	},
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tagged games",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done, err := tagService()
		if err != nil {
			return err
		}
		defer done()

		games, err := svc.List(cmd.Context(), library.Tag(tagFilter))
		if err != nil {
			return err
		}
		return printGames(games)
	},
}

var tagsBacklogCmd = &cobra.Command{
	Use:   "backlog",
	Short: "List backlog games",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, done, err := tagService()
		if err != nil {
			return err
		}
		defer done()

		games, err := svc.Backlog(cmd.Context())
		if err != nil {
			return err
		}
		return printGames(games)
	},
}

func printGames(games []rpc.TaggedGame) error {
	if jsonOutput {
		return output.JSON(games)
	}
	if len(games) == 0 {
		output.Info(output.Subtle("No games"))
		return nil
	}
	for _, g := range games {
		line := fmt.Sprintf("%s %s %s", output.FormatTag(g.Tag), g.GameName, output.Subtle("("+string(g.AppID)+")"))
		if g.IsManual {
			line += output.Subtle(" manual")
		}
		fmt.Println(line)
	}
	return nil
}

var tagsShowCmd = &cobra.Command{
	Use:   "show <appid>",
	Short: "Show stored details of a game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appid, err := parseAppIDArg(args[0])
		if err != nil {
			return err
		}
		svc, done, err := tagService()
		if err != nil {
			return err
		}
		defer done()

		d, err := svc.Details(cmd.Context(), appid)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(d)
		}

		name := appid
		if d.Stats != nil && d.Stats.GameName != "" {
			name = d.Stats.GameName
		}
		fmt.Println(output.Title(name))
		if d.Tag != nil {
			fmt.Printf("  Tag:          %s\n", output.FormatTag(d.Tag.Tag))
		}
		if d.Stats != nil {
			fmt.Printf("  Playtime:     %dh %dm\n", d.Stats.PlaytimeMinutes/60, d.Stats.PlaytimeMinutes%60)
			fmt.Printf("  Achievements: %d/%d\n", d.Stats.UnlockedAchievements, d.Stats.TotalAchievements)
		}
		if h := d.HLTBData; h != nil && h.MainStory != nil {
			fmt.Printf("  Main story:   %.1fh\n", *h.MainStory)
		}
		return nil
	},
}

var tagsSetCmd = &cobra.Command{
	Use:   "set <appid> <tag>",
	Short: "Assign a manual tag (completed, in_progress, mastered, dropped)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		appid, err := parseAppIDArg(args[0])
		if err != nil {
			return err
		}
		svc, done, err := tagService()
		if err != nil {
			return err
		}
		defer done()

		tag, err := svc.Set(cmd.Context(), appid, args[1])
		if err != nil {
			return err
		}
		output.Success("Tagged %s as %s", appid, tag.Label())
		return nil
	},
}

var tagsResetCmd = &cobra.Command{
	Use:   "reset <appid>",
	Short: "Return a game to its automatic tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appid, err := parseAppIDArg(args[0])
		if err != nil {
			return err
		}
		svc, done, err := tagService()
		if err != nil {
			return err
		}
		defer done()

		if err := svc.Reset(cmd.Context(), appid); err != nil {
			return err
		}
		output.Success("Reset tag of %s", appid)
		return nil
	},
}

var tagsRemoveCmd = &cobra.Command{
	Use:   "remove <appid>",
	Short: "Remove the tag of a game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appid, err := parseAppIDArg(args[0])
		if err != nil {
			return err
		}
		svc, done, err := tagService()
		if err != nil {
			return err
		}
		defer done()

		if err := svc.Remove(cmd.Context(), appid); err != nil {
			return err
		}
		output.Success("Removed tag of %s", appid)
		return nil
	},
}

func init() {
	tagsListCmd.Flags().StringVar(&tagFilter, "tag", "", "Only list games with this tag")

	tagsCmd.AddCommand(tagsStatsCmd, tagsListCmd, tagsBacklogCmd, tagsShowCmd, tagsSetCmd, tagsResetCmd, tagsRemoveCmd)
	RootCmd.AddCommand(tagsCmd)
}
