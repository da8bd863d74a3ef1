package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/watchapi"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	collection, err := deps.Collections.Collection(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", watchapi.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(collection)
}
