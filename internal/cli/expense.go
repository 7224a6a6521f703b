package cli

import (
	"context"
	"log"

	"github.com/cashtrack/cashtrack/internal/api"
)

func (a *App) AddExpense(ctx context.Context) error {
	amount, err := GetAmount(a.reader, "Enter amount", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	category, err := GetSimpleText(a.reader, "Enter category", a.out)
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

	resp, err := a.client.AddExpense(ctx, api.AddExpenseRequest{
		Amount:      amount,
		Category:    category,
		Date:        api.Date{Time: date},
		Description: description,
	})
	if err != nil {
		log.Printf("Could not add expense: %s", err.Error())
		return err
	}

	if len(resp.Reports) > 0 && resp.Reports[0].Message != "" {
		printlnFn(resp.Reports[0].Message)
	} else {
		printlnFn("Expense added")
	}

	_ = a.dash.Expenses.Refresh(ctx)
	return nil
}

func (a *App) DeleteExpense(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter expense id", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.dash.Expenses.DeleteItem(ctx, id); err != nil {
		log.Printf("Could not delete expense: %s", err.Error())
		return err
	}

	printlnFn("Expense deleted")
	_ = a.dash.Expenses.Refresh(ctx)
	return nil
}
