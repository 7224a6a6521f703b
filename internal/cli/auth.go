package cli

import (
	"context"
	"log"

	"github.com/cashtrack/cashtrack/internal/api"
	"github.com/cashtrack/cashtrack/internal/common"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	err = a.store.Login(ctx, api.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Login successful")
	a.dash.RefreshAll(ctx)
	return nil
}

func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	name, err := GetSimpleText(a.reader, "Enter name (optional)", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	err = a.store.Register(ctx, api.RegisterRequest{Email: email, Password: string(password), Name: name})
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	log.Printf("Registration successful")
	a.dash.RefreshAll(ctx)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.store.Logout(ctx)
	return nil
}
