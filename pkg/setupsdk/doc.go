/*
Package setupsdk is the Go client for the werewolf game setup service.

# SDKClient vs Session

  - SDKClient: public endpoints (health, JWKS, QR codes) and device registration
  - Session: a registered device's bearer token and every per-device operation

Register once and keep the token; a Session can be rebuilt from it later:

	client := setupsdk.NewSDKClient("https://setup.example.com")

	session, err := client.RegisterDevice(ctx)
	if err != nil {
		return err
	}
	token := session.Token() // persist this on the device

	session = client.NewSessionFromToken(token)

# Building a deck

	_, err = session.CreateRole(ctx, setupsdk.CreateRoleRequest{
		Role:        "Alpha",
		Team:        "evil",
		Description: "Wakes with the wolves.",
		Saved:       true,
	})

	_, err = session.Increment(ctx, "Villager")
	_, err = session.Increment(ctx, "Alpha")

	game, err := session.CreateGame(ctx, setupsdk.CreateGameRequest{
		Name:    "Moderator",
		Time:    5,
		Reveals: true,
	})
	fmt.Println(game.AccessCode, game.JoinURL)

# Errors

Every non-2xx response becomes an *APIError carrying the HTTP status, the
error code and, for game validation, per-field details:

	var apiErr *setupsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == setupsdk.ErrorCodeValidation {
		fmt.Println(apiErr.Details["name"])
	}

Writes that changed the catalog but failed to persist succeed with a
non-empty Warning on the response.
*/
package setupsdk
