package supabase

import (
	"fmt"
	"strings"

	"client-portal/internal/config"

	"github.com/supabase-community/supabase-go"
)

type Client struct {
	Supabase *supabase.Client
}

func NewClient(url, key string) (*Client, error) {
	client, err := supabase.NewClient(strings.TrimSuffix(url, "/"), key, nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		Supabase: client,
	}, nil
}

// Clients holds the two credentials the portal runs with: Public uses the
// anon key and serves client-facing reads, Admin uses the service-role key
// and serves the admin surface.
type Clients struct {
	Public *Client
	Admin  *Client
}

func NewClients(cfg *config.Config) (*Clients, error) {
	public, err := NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create public supabase client: %w", err)
	}

	admin, err := NewClient(cfg.SupabaseURL, cfg.PrivilegedKey())
	if err != nil {
		return nil, fmt.Errorf("failed to create admin supabase client: %w", err)
	}

	return &Clients{Public: public, Admin: admin}, nil
}
