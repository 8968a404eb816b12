package main

import (
	"context"
	"fmt"

	"github.com/zyraworkhub/zyra/core/record"
)

// addAdmin registers a new admin entry through the regular record flow.
func (cli *commandLine) addAdmin(name, email string) error {
	entry := record.NewAdminEntry{Name: name, Email: email}
	if err := entry.Validate(cli.validate); err != nil {
		return err
	}

	created, err := cli.recordSvc.CreateAdmin(context.Background(), entry)
	if err != nil {
		return err
	}
	cli.logger.Info(fmt.Sprintf("admin %q registered with id %s", created.Name, created.ID))
	return nil
}
