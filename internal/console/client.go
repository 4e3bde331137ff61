package console

import (
	"context"
	"errors"

	"salonbook/internal/domain"
	"salonbook/internal/modules/booking"
)

// clientFlow walks a client through master, procedure and slot choice and books the slot.
func (c *Console) clientFlow(ctx context.Context) error {
	return c.report(c.browseAndBook(ctx))
}

func (c *Console) browseAndBook(ctx context.Context) error {
	offers, err := c.catalog.Showcase(ctx)
	if err != nil {
		return err
	}
	if len(offers) == 0 {
		c.println("No services available yet.")
		return nil
	}
	for _, o := range offers {
		c.printf("--------------------\nID: %d | Master: %s | Specialization: %s\n", o.Master.ID, o.Master.Name, o.Master.Specialization)
		for _, p := range o.Procedures {
			c.printf("  - %s: %d\n", p.Title, p.Price)
		}
	}

	masterID, err := c.promptInt("Choose master ID: ")
	if err != nil {
		return err
	}
	procs, err := c.catalog.ProceduresOf(ctx, masterID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.println("This master has no services or the ID is wrong.")
			return nil
		}
		return err
	}
	for _, p := range procs {
		c.printf("Procedure ID: %d | %s - %d\n", p.ID, p.Title, p.Price)
	}

	procedureID, err := c.promptInt("Choose procedure ID: ")
	if err != nil {
		return err
	}

	slots, err := c.schedule.Available(ctx, masterID)
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		c.println("No free slots for this master.")
		return nil
	}
	for _, s := range slots {
		c.printf("ID: %d | Date: %-15s | Time: %-15s\n", s.ID, s.WorkDate, s.WorkTime)
	}

	slotID, err := c.promptInt("Choose slot ID: ")
	if err != nil {
		return err
	}
	slot, err := c.schedule.FindAvailable(ctx, masterID, slotID)
	if err != nil {
		return err
	}

	name, err := c.promptUntilValid("Enter your first and last name: ", booking.ValidateName,
		"Please enter both first and last name!")
	if err != nil {
		return err
	}
	phone, err := c.promptUntilValid("Enter phone number: ", booking.ValidatePhone,
		"Enter a valid phone number!")
	if err != nil {
		return err
	}
	c.println("Thank you! Number accepted.")

	b, err := c.bookings.Reserve(ctx, booking.ReserveRequest{
		MasterID:    masterID,
		ProcedureID: procedureID,
		SlotID:      slot.ID,
		Name:        name,
		Phone:       phone,
	})
	if err != nil {
		return err
	}
	c.printf("Booked for %s. Reference: %s. Waiting for confirmation.\n", b.FullTime, b.Reference)
	return nil
}

// promptUntilValid re-prompts until check accepts the input or input ends.
func (c *Console) promptUntilValid(label string, check func(string) (string, error), hint string) (string, error) {
	for {
		line, err := c.prompt(label)
		if err != nil {
			return "", err
		}
		v, err := check(line)
		if err == nil {
			return v, nil
		}
		c.println(hint)
	}
}
