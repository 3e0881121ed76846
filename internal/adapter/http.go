package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/usiverse/userd/internal/logger"
	"github.com/usiverse/userd/internal/validators"
	"github.com/usiverse/userd/models"
)

type httpUserServiceClient struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPUserServiceClient constructs a REST implementation of
// [UserServiceClient]. It normalises and validates the base URL and
// configures the underlying HTTP client with the given request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPUserServiceClient(address string, requestTimeout time.Duration, logger *logger.Logger) (UserServiceClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid user service address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json")

	return &httpUserServiceClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpUserServiceClient) Ping(ctx context.Context) (models.StatusResponse, error) {
	var status models.StatusResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/")
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("%w: ping request: %w", ErrCommunication, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusResponse{}, err
	}

	return status, nil
}

func (c *httpUserServiceClient) Accounts(ctx context.Context) ([]models.Account, error) {
	return c.getAccountList(ctx, "/users/")
}

func (c *httpUserServiceClient) Account(ctx context.Context, username string) (models.Account, error) {
	var account models.Account

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&account).
		Get(accountPath(username))
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: get account request: %w", ErrCommunication, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

func (c *httpUserServiceClient) AddAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error) {
	if err := validators.CreationRequiredFields(req); err != nil {
		return models.Account{}, err
	}

	var account models.Account

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&account).
		Put("/users/")
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: add account request: %w", ErrCommunication, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

func (c *httpUserServiceClient) UpdateAccount(ctx context.Context, req models.UpdateAccountRequest) (models.Account, error) {
	if err := validators.UserUpdateFieldsOK(&req); err != nil {
		return models.Account{}, err
	}

	var account models.Account

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&account).
		Put(accountPath(req.Username))
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: update account request: %w", ErrCommunication, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

func (c *httpUserServiceClient) RemoveAccount(ctx context.Context, username string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete(accountPath(username))
	if err != nil {
		return fmt.Errorf("%w: remove account request: %w", ErrCommunication, err)
	}

	return mapHTTPError(resp)
}

func (c *httpUserServiceClient) Authenticate(ctx context.Context, username, password string) (bool, error) {
	var ok bool

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.AuthenticateRequest{Password: password}).
		SetResult(&ok).
		Post("/access/auth/" + url.PathEscape(username) + "/")
	if err != nil {
		return false, fmt.Errorf("%w: authenticate request: %w", ErrCommunication, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return ok, nil
}

func (c *httpUserServiceClient) Dump(ctx context.Context) ([]models.Account, error) {
	return c.getAccountList(ctx, "/usiverse/dump/")
}

func (c *httpUserServiceClient) Load(ctx context.Context, accounts []models.Account) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(accounts).
		Post("/usiverse/load/")
	if err != nil {
		return fmt.Errorf("%w: load request: %w", ErrCommunication, err)
	}

	return mapHTTPError(resp)
}

func (c *httpUserServiceClient) getAccountList(ctx context.Context, path string) ([]models.Account, error) {
	var accounts []models.Account

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&accounts).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: list request: %w", ErrCommunication, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return accounts, nil
}

func accountPath(username string) string {
	return "/user/" + url.PathEscape(username) + "/"
}
