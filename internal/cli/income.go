package cli

import (
	"context"
	"log"

	"github.com/cashtrack/cashtrack/internal/api"
)

func (a *App) AddIncome(ctx context.Context) error {
	amount, err := GetAmount(a.reader, "Enter amount", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	date, err := GetDate(a.reader, "Enter date", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	description, err := GetSimpleText(a.reader, "Enter description", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	resp, err := a.client.AddIncome(ctx, api.AddIncomeRequest{
		Amount:      amount,
		Date:        api.Date{Time: date},
		Description: description,
	})
	if err != nil {
		log.Printf("Could not add income: %s", err.Error())
		return err
	}

	if len(resp.Reports) > 0 && resp.Reports[0].Message != "" {
		printlnFn(resp.Reports[0].Message)
	} else {
		printlnFn("Income added")
	}

	_ = a.dash.Incomes.Refresh(ctx)
	return nil
}

func (a *App) DeleteIncome(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter income id", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.dash.Incomes.DeleteItem(ctx, id); err != nil {
		log.Printf("Could not delete income: %s", err.Error())
		return err
	}

	printlnFn("Income deleted")
	_ = a.dash.Incomes.Refresh(ctx)
	return nil
}
