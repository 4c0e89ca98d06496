package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sohaibmughall/crm-panel/internal/client/models"
	"github.com/sohaibmughall/crm-panel/internal/client/services"
)

func (a *App) listUsers(ctx context.Context) error {
	items := a.users.List()
	if len(items) == 0 {
		printlnFn("No managed users. They live only for this run.")
		return nil
	}
	for _, u := range items {
		printlnFn(fmt.Sprintf("%d\t%s\t%s\t%s", u.ID, u.Name, u.Email, u.Role))
	}
	return nil
}

func (a *App) promptUser() (services.ManagedUserInput, error) {
	var in services.ManagedUserInput
	var err error

	if in.Name, err = getSimpleText(a.reader, "Name", os.Stdout); err != nil {
		return in, err
	}
	if in.Email, err = getSimpleText(a.reader, "Email", os.Stdout); err != nil {
		return in, err
	}

	role, err := getSimpleText(a.reader, "Role (admin/editor/viewer)", os.Stdout)
	if err != nil {
		return in, err
	}
	in.Role = models.Role(role)
	return in, nil
}

func (a *App) addUser(ctx context.Context) error {
	in, err := a.promptUser()
	if err != nil {
		return err
	}

	u, err := a.users.Add(in)
	if err != nil {
		printlnFn("Add failed:", err.Error())
		return err
	}
	printlnFn("Added user", u.ID)
	return nil
}

func (a *App) editUser(ctx context.Context, id int64) error {
	in, err := a.promptUser()
	if err != nil {
		return err
	}

	if _, err := a.users.Update(id, in); err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}
	printlnFn("Updated user", id)
	return nil
}

// SetRole changes one managed user's role in place.
func (a *App) SetRole(ctx context.Context, rawID, role string) error {
	id, ok := parseID(rawID)
	if !ok {
		printlnFn("Invalid id:", rawID)
		return nil
	}

	parsed, ok := models.ParseRole(role)
	if !ok {
		printlnFn("Unknown role:", role)
		return nil
	}

	a.users.SetRole(id, parsed)
	printlnFn("Role updated")
	return nil
}
