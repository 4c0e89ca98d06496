package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sohaibmughall/crm-panel/internal/client/services"
)

func (a *App) listCustomers(ctx context.Context) error {
	items, err := a.customers.List(ctx)
	if err != nil {
		printlnFn("Could not load customers:", err.Error())
		return err
	}

	if len(items) == 0 {
		printlnFn("No customers yet.")
		return nil
	}
	for _, c := range items {
		printlnFn(fmt.Sprintf("%d\t%s\t%s\t%s", c.ID, c.Name, c.Email, c.Company))
	}
	return nil
}

func (a *App) promptCustomer() (services.CustomerInput, error) {
	var in services.CustomerInput
	var err error

	if in.Name, err = getSimpleText(a.reader, "Name", os.Stdout); err != nil {
		return in, err
	}
	if in.Email, err = getSimpleText(a.reader, "Email", os.Stdout); err != nil {
		return in, err
	}
	if in.Phone, err = getSimpleText(a.reader, "Phone (optional)", os.Stdout); err != nil {
		return in, err
	}
	if in.Company, err = getSimpleText(a.reader, "Company (optional)", os.Stdout); err != nil {
		return in, err
	}
	return in, nil
}

func (a *App) addCustomer(ctx context.Context) error {
	in, err := a.promptCustomer()
	if err != nil {
		return err
	}

	created, err := a.customers.Create(ctx, in)
	if err != nil {
		printlnFn("Create failed:", err.Error())
		return err
	}
	printlnFn("Created customer", created.ID)
	return nil
}

func (a *App) editCustomer(ctx context.Context, id int64) error {
	if cur, ok := a.customers.Get(id); ok {
		printlnFn("Editing", cur.Name)
	}

	in, err := a.promptCustomer()
	if err != nil {
		return err
	}

	if _, err := a.customers.Update(ctx, id, in); err != nil {
		printlnFn("Update failed:", err.Error())
		return err
	}
	printlnFn("Updated customer", id)
	return nil
}
