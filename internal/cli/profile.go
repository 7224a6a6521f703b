package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) Profile(ctx context.Context) error {
	if err := a.profile.Fetch(ctx); err != nil {
		log.Printf("Could not fetch profile: %s", err.Error())
		return err
	}

	p := a.profile.Profile()
	if p == nil {
		printlnFn("No profile data.")
		return nil
	}
	printlnFn(fmt.Sprintf("Email: %s", p.Email))
	printlnFn(fmt.Sprintf("Name:  %s %s", p.FirstName, p.LastName))
	return nil
}

func (a *App) SetProfile(ctx context.Context) error {
	firstName, err := GetSimpleText(a.reader, "Enter first name", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	lastName, err := GetSimpleText(a.reader, "Enter last name", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.profile.Update(ctx, firstName, lastName); err != nil {
		log.Printf("Could not update profile: %s", err.Error())
		return err
	}

	printlnFn("Profile updated")
	return nil
}
