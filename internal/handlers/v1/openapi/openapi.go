// Package openapi builds the Huma configuration shared by the server and the
// handler tests.
package openapi

import "github.com/danielgtaylor/huma/v2"

const (
	Title   = "ledger-server"
	Version = "1.0.0"
)

// Config is huma.DefaultConfig without the $schema link added to response
// bodies, so records are served exactly as projected.
func Config() huma.Config {
	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = "Personal finance ledger: users, accounts, categories, transactions, budgets and notifications."
	config.CreateHooks = nil
	return config
}
