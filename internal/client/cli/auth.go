package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"wallmagic/internal/client/client"
	"wallmagic/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for account details and attempts to create a new account
// on the server.
//
// On success the CLI is logged in as the new account and prints "Success!".
// The password byte slice is securely wiped before returning. Service errors
// are logged and returned unchanged.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	fullName, err := getSimpleText(a.reader, "Enter full name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.api.Register(ctx, email, userName, password, fullName)
	if err != nil {
		log.Printf("Registration unsuccessfull: %s", err.Error())
		return err
	}

	a.userName = res.User.Username
	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// On success the issued token is retained by the API client and the CLI
// switches to the logged-in prompt. A server that cannot be reached
// (errors.Is(err, client.ErrUnavailable)) is reported separately from a
// credentials failure. The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.api.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			log.Printf("Server unavailable: %s", err.Error())
		} else {
			log.Printf("Login unsuccessfull: %s", err.Error())
		}
		a.userName = ""
		return nil
	}

	log.Printf("Login successfull")
	a.userName = res.User.Username
	return nil
}

// Logout drops the stored token and returns the CLI to the anonymous prompt.
// Tokens are stateless, so the server is not contacted.
func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.userName = ""
	fmt.Println("Logged out")
	return nil
}
