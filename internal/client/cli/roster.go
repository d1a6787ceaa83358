package cli

import (
	"context"
	"fmt"
)

// Roster prints the full employee list: one line per person with name,
// department and contacts. Records still carrying the backend's default
// name render the placeholder instead.
func (a *App) Roster(ctx context.Context) error {
	profiles, err := a.profiles.List(ctx)
	if err != nil {
		printlnFn("Failed to load the employee list.")
		a.log.Error(ctx, "load roster failed", "err", err)
		return err
	}

	if len(profiles) == 0 {
		printlnFn("The directory is empty.")
		return nil
	}

	printlnFn(fmt.Sprintf("Employees (%d):", len(profiles)))
	for i := range profiles {
		p := &profiles[i]
		line := fmt.Sprintf("%4d  %-30s %-20s %-16s %s", p.ID, displayNameOf(p), p.Department, p.Phone, p.Email)
		if p.PhotoThumb != "" {
			line += "  [photo]"
		}
		printlnFn(line)
	}
	printlnFn("Type 'view <id>' to open a profile.")
	return nil
}
