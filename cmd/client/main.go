package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/dtroode/marketplace-auth/internal/client"
	"github.com/dtroode/marketplace-auth/internal/client/session"
	"github.com/dtroode/marketplace-auth/internal/config"
	"github.com/dtroode/marketplace-auth/internal/logger"
)

const usage = `usage: client <command> [args]

Logs in as CLIENT_EMAIL (password is prompted) and runs one command:
  whoami                 print the identity carried by the access token
  revoke-all             revoke every session of the current user
  revoke-user <user-id>  revoke every session of another user
  logout [everywhere]    revoke this session, or all of them
`

// readPassword is replaced in tests.
var readPassword = term.ReadPassword

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.NewClientConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(int(slog.LevelWarn))

	c, err := client.New(client.Options{
		Addr:           cfg.Addr,
		RefreshTimeout: cfg.RefreshTimeout,
		EnableTLS:      cfg.EnableTLS,
		CAFile:         cfg.CAFile,
	}, logger)
	if err != nil {
		logger.Fatal("failed to create client", "error", err)
	}
	defer c.Close()

	pw, err := promptPassword(os.Stderr, int(os.Stdin.Fd()))
	if err != nil {
		logger.Fatal("failed to read password", "error", err)
	}

	if err := c.Login(ctx, cfg.Email, pw, cfg.TenantID); err != nil {
		logger.Fatal("login failed", "error", err)
	}

	if err := run(ctx, c, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, session.ErrSessionExpired) || errors.Is(err, session.ErrSessionCompromised) {
			fmt.Fprintln(os.Stderr, "session ended, please log in again")
		}
		logger.Fatal("command failed", "error", err)
	}

	// Each invocation opens its own session; do not leave it behind.
	if _, ok := c.Session().Tokens(); ok {
		if err := c.Logout(ctx, false); err != nil {
			logger.Warn("failed to close session", "error", err)
		}
	}
}

// promptPassword asks for a password on w and reads it from fd without echo.
func promptPassword(w io.Writer, fd int) (string, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

func run(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	switch args[0] {
	case "whoami":
		me, err := c.WhoAmI(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "user:        %s\n", me.GetUserId())
		if me.GetTenantId() != "" {
			fmt.Fprintf(out, "tenant:      %s\n", me.GetTenantId())
		}
		fmt.Fprintf(out, "roles:       %s\n", strings.Join(me.GetRoles(), ", "))
		fmt.Fprintf(out, "permissions: %s\n", strings.Join(me.GetPermissions(), ", "))
	case "revoke-all":
		n, err := c.RevokeAllSessions(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "revoked %d session(s)\n", n)
	case "revoke-user":
		if len(args) != 2 {
			return fmt.Errorf("revoke-user needs a user id")
		}
		n, err := c.RevokeUserSessions(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "revoked %d session(s) of %s\n", n, args[1])
	case "logout":
		everywhere := len(args) > 1 && args[1] == "everywhere"
		if err := c.Logout(ctx, everywhere); err != nil {
			return err
		}
		fmt.Fprintln(out, "logged out")
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}
