package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/watchapi"
)

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	watch, err := deps.Collections.FindWatchByName(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", watchapi.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(watch)
}
