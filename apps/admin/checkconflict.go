package main

import (
	"context"
	"fmt"
)

func (cli *commandLine) checkConflict(studentID, batchID string) error {
	conflict, warns, err := cli.enrollSvc.CheckConflict(context.Background(), studentID, batchID)
	if err != nil {
		return err
	}

	for _, warn := range warns {
		fmt.Printf("warning: batch %s: %s\n", warn.Batch.ID, warn.Reason)
	}
	if conflict == nil {
		fmt.Println("no conflict")
		return nil
	}

	fmt.Printf("conflict with batch %q on %s", conflict.Batch.Name, conflict.Days)
	if conflict.Times != nil {
		fmt.Printf(" at %s", conflict.Times)
	}
	fmt.Println()
	return nil
}
