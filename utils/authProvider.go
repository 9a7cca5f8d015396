package utils

import (
	"fmt"
	"log"

	"github.com/mendokusaisai/kodomo-wallet/config"

	"github.com/go-resty/resty/v2"
)

// VerifyAccessToken resolves the identity provider's access token into the
// verified (authUserID, email) pair. The provider is the only credential
// authority; this service never sees passwords.
func VerifyAccessToken(accessToken string) (authUserID, email string, err error) {
	if config.AppConfig.AuthAPIURL == "" {
		return "", "", fmt.Errorf("identity provider not configured")
	}

	client := resty.New()

	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	resp, err := client.R().
		SetHeader("apikey", config.AppConfig.AuthServiceKey).
		SetHeader("Authorization", "Bearer "+accessToken).
		SetResult(&payload).
		Get(config.AppConfig.AuthAPIURL + "/user")

	if err != nil {
		return "", "", fmt.Errorf("failed to reach identity provider: %v", err)
	}
	if resp.IsError() {
		return "", "", fmt.Errorf("identity provider rejected token: %s", resp.Status())
	}
	if payload.ID == "" {
		return "", "", fmt.Errorf("identity provider returned no subject")
	}

	return payload.ID, payload.Email, nil
}

// NotifyChildSignup asks the identity provider to send its signup
// invitation for the child's email. The provider issues the credentials;
// this service only ever receives the resulting authenticated user id at
// invite-accept time.
func NotifyChildSignup(email, childName string, childProfileID uint) error {
	if config.AppConfig.AuthAPIURL == "" {
		log.Println("[AUTH-PROVIDER] AUTH_API_URL not configured, skipping signup invitation")
		return nil
	}

	client := resty.New()

	resp, err := client.R().
		SetHeader("apikey", config.AppConfig.AuthServiceKey).
		SetHeader("Authorization", "Bearer "+config.AppConfig.AuthServiceKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"email": email,
			"data": map[string]interface{}{
				"child_profile_id": childProfileID,
				"name":             childName,
				"role":             "child", // invite flow always creates child logins
			},
		}).
		Post(config.AppConfig.AuthAPIURL + "/invite")

	if err != nil {
		return fmt.Errorf("failed to reach identity provider: %v", err)
	}
	if resp.IsError() {
		return fmt.Errorf("identity provider rejected invitation: %s", resp.Status())
	}

	log.Printf("[AUTH-PROVIDER] Signup invitation sent for profile %d", childProfileID)
	return nil
}
