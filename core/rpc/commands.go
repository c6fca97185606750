package rpc

// Backend command names.
const (
	CmdGetSettings             = "get_settings"
	CmdGetAllGames             = "get_all_games"
	CmdSyncLibraryWithPlaytime = "sync_library_with_playtime"
	CmdSyncSingleGameWithData  = "sync_single_game_with_data"
	CmdGetSyncProgress         = "get_sync_progress"
	CmdGetTagStatistics        = "get_tag_statistics"
	CmdGetAllTagsWithNames     = "get_all_tags_with_names"
	CmdGetBacklogGames         = "get_backlog_games"
	CmdGetGameDetails          = "get_game_details"
	CmdSetManualTag            = "set_manual_tag"
	CmdResetToAutoTag          = "reset_to_auto_tag"
	CmdRemoveTag               = "remove_tag"
	CmdLogFrontend             = "log_frontend"
)
