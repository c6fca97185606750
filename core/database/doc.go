// Package database handles the run history database connection.
//
// It wraps GORM and selects the dialector from configuration: sqlite (the default, a
// single file next to the bridge) or MySQL for shared installs.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Run history disabled", zap.Error(err))
//	}
package database
