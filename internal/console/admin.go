package console

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"salonbook/internal/modules/catalog"
	"salonbook/internal/modules/schedule"
)

func (c *Console) adminMenu(ctx context.Context) error {
	for {
		c.println("")
		c.println("1. Add master")
		c.println("2. Add procedures")
		c.println("3. Add schedule")
		c.println("4. Confirm bookings")
		c.println("5. List masters")
		c.println("0. Back")

		choice, err := c.prompt("Choose an option: ")
		if err != nil {
			return err
		}
		c.log.Debug("admin menu", zap.String("choice", choice))

		switch choice {
		case "1":
			err = c.addMaster(ctx)
		case "2":
			err = c.addProcedures(ctx)
		case "3":
			err = c.addSchedule(ctx)
		case "4":
			err = c.confirmBookings(ctx)
		case "5":
			err = c.listMasters(ctx)
		case "0":
			return nil
		default:
			c.println("Unknown option.")
			continue
		}
		if err := c.report(err); err != nil {
			return err
		}
	}
}

func (c *Console) addMaster(ctx context.Context) error {
	name, err := c.prompt("Enter master name: ")
	if err != nil {
		return err
	}
	spec, err := c.prompt("Enter specialization: ")
	if err != nil {
		return err
	}

	m, err := c.catalog.AddMaster(ctx, catalog.AddMasterRequest{Name: name, Specialization: spec})
	if err != nil {
		return err
	}
	c.printf("Master %s saved with ID %d.\n", m.Name, m.ID)
	return nil
}

func (c *Console) addProcedures(ctx context.Context) error {
	for {
		title, err := c.prompt("Enter procedure title (" + c.stopWord + " to finish): ")
		if err != nil {
			return err
		}
		if c.isStop(title) {
			return nil
		}

		price, err := c.promptInt("Enter price: ")
		if err != nil {
			if err := c.report(err); err != nil {
				return err
			}
			continue
		}

		line, err := c.prompt("Enter master IDs separated by spaces: ")
		if err != nil {
			return err
		}
		ids, err := parseInts(line)
		if err != nil {
			if err := c.report(err); err != nil {
				return err
			}
			continue
		}

		p, err := c.catalog.AddProcedure(ctx, catalog.AddProcedureRequest{Title: title, Price: price, MasterIDs: ids})
		if err != nil {
			if err := c.report(err); err != nil {
				return err
			}
			continue
		}
		c.printf("Procedure %s, price %d saved with ID %d.\n", p.Title, p.Price, p.ID)
	}
}

func (c *Console) listMasters(ctx context.Context) error {
	masters, err := c.catalog.ListMasters(ctx)
	if err != nil {
		return err
	}
	if len(masters) == 0 {
		c.println("No masters yet.")
		return nil
	}
	for _, m := range masters {
		c.printf("ID: %-3d | Master: %-30s | Specialization: %-30s\n", m.ID, m.Name, m.Specialization)
	}
	return nil
}

func (c *Console) addSchedule(ctx context.Context) error {
	masterID, err := c.promptInt("Enter master ID: ")
	if err != nil {
		return err
	}
	year, err := c.promptInt("Enter year (e.g. 2026): ")
	if err != nil {
		return err
	}
	month, err := c.promptInt("Enter month (1-12): ")
	if err != nil {
		return err
	}

	var times []string
	for {
		label, err := c.prompt("Enter appointment time (" + c.stopWord + " to finish): ")
		if err != nil {
			return err
		}
		if c.isStop(label) {
			break
		}
		if label != "" {
			times = append(times, label)
		}
	}

	res, err := c.schedule.GenerateMonth(ctx, schedule.GenerateRequest{
		MasterID: masterID,
		Year:     int(year),
		Month:    int(month),
		Times:    times,
	})
	if err != nil {
		return err
	}
	for _, d := range res.Duplicates {
		c.printf("Slot %s %s already exists.\n", d.Date, d.Time)
	}
	for _, f := range res.Failures {
		c.printf("Slot %s %s failed: %v\n", f.Date, f.Time, f.Err)
	}
	c.printf("Working hours set: %d slots created.\n", res.Created)

	line, err := c.prompt("Enter days off separated by spaces (empty for none): ")
	if err != nil {
		return err
	}
	var days []int
	for _, f := range strings.Fields(line) {
		n, err := parseInt(f)
		if err != nil {
			if err := c.report(err); err != nil {
				return err
			}
			continue
		}
		days = append(days, int(n))
	}
	if len(days) == 0 {
		return nil
	}

	results, err := c.schedule.MarkDaysOff(ctx, schedule.DaysOffRequest{
		MasterID: masterID,
		Year:     int(year),
		Month:    int(month),
		Days:     days,
	})
	for _, r := range results {
		if r.Err != nil {
			if err := c.report(r.Err); err != nil {
				return err
			}
			continue
		}
		c.printf("Day off %s: %d slots closed, %d booked kept.\n", r.Date, r.Marked, r.KeptBooked)
	}
	return err
}

func (c *Console) confirmBookings(ctx context.Context) error {
	for {
		pending, err := c.bookings.Pending(ctx)
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			c.println("No pending bookings.")
			return nil
		}
		for _, b := range pending {
			c.printf("ID: %-3d | Status: %-10s | Client: %-25s | Phone: %-10s | Master: %-25s | Procedure: %-20s | Date: %s\n",
				b.ID, b.Status, b.ClientName, b.ClientPhone, b.MasterName, b.ProcedureTitle, b.FullTime)
		}

		line, err := c.prompt("Enter booking ID to confirm (" + c.stopWord + " to finish): ")
		if err != nil {
			return err
		}
		if c.isStop(line) {
			return nil
		}
		id, err := parseInt(line)
		if err != nil {
			c.println("Enter a valid ID.")
			continue
		}
		if err := c.bookings.Confirm(ctx, id); err != nil {
			if err := c.report(err); err != nil {
				return err
			}
			continue
		}
		c.printf("Booking #%d confirmed!\n", id)
	}
}
