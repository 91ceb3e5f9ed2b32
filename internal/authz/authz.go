// Package authz declares per-operation access requirements and checks
// principals against them.
package authz

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dtroode/marketplace-auth/internal/model"
)

// Kind distinguishes requirement variants.
type Kind int

const (
	KindPublic Kind = iota
	KindAuthenticated
	KindPermission
)

func (k Kind) String() string {
	switch k {
	case KindPublic:
		return "public"
	case KindAuthenticated:
		return "authenticated"
	case KindPermission:
		return "permission"
	default:
		return "unknown"
	}
}

// Requirement is the access marker attached to an operation.
type Requirement struct {
	kind Kind
	code string
}

func Public() Requirement        { return Requirement{kind: KindPublic} }
func Authenticated() Requirement { return Requirement{kind: KindAuthenticated} }

// Permission requires the principal to hold code.
func Permission(code string) Requirement {
	return Requirement{kind: KindPermission, code: code}
}

func (r Requirement) Kind() Kind   { return r.kind }
func (r Requirement) Code() string { return r.code }

// NeedsPrincipal reports whether a bearer credential must be presented.
func (r Requirement) NeedsPrincipal() bool {
	return r.kind != KindPublic
}

func (r Requirement) String() string {
	if r.kind == KindPermission {
		return fmt.Sprintf("permission(%s)", r.code)
	}
	return r.kind.String()
}

// Check evaluates the requirement against the caller's principal and its
// permission set. A nil principal means the caller is anonymous.
func Check(principal *model.Principal, granted model.PermissionSet, req Requirement) error {
	switch req.kind {
	case KindPublic:
		return nil
	case KindAuthenticated:
		if principal == nil {
			return model.ErrUnauthenticated
		}
		return nil
	case KindPermission:
		if principal == nil {
			return model.ErrUnauthenticated
		}
		if !granted.Has(req.code) {
			return model.ErrForbidden
		}
		return nil
	default:
		return model.ErrForbidden
	}
}

var (
	ErrDuplicate = errors.New("operation already registered")
	ErrInvalid   = errors.New("invalid requirement")
	ErrFrozen    = errors.New("catalog is frozen")
)

// Catalog maps full operation names to their requirements. Operations
// that were never registered are public.
type Catalog struct {
	mu     sync.RWMutex
	ops    map[string]Requirement
	frozen bool
}

func NewCatalog() *Catalog {
	return &Catalog{ops: make(map[string]Requirement)}
}

// Register attaches req to operation.
func (c *Catalog) Register(operation string, req Requirement) error {
	if operation == "" {
		return fmt.Errorf("%w: empty operation name", ErrInvalid)
	}
	if req.kind == KindPermission && req.code == "" {
		return fmt.Errorf("%w: empty permission code for %s", ErrInvalid, operation)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.frozen {
		return ErrFrozen
	}
	if _, ok := c.ops[operation]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, operation)
	}
	c.ops[operation] = req

	return nil
}

// MustRegister is Register that panics, for static startup tables.
func (c *Catalog) MustRegister(operation string, req Requirement) {
	if err := c.Register(operation, req); err != nil {
		panic(err)
	}
}

// Lookup returns the requirement of operation.
func (c *Catalog) Lookup(operation string) Requirement {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if req, ok := c.ops[operation]; ok {
		return req
	}
	return Public()
}

// Freeze rejects further registrations.
func (c *Catalog) Freeze() {
	c.mu.Lock()
	c.frozen = true
	c.mu.Unlock()
}

// Operations returns the registered operation names sorted.
func (c *Catalog) Operations() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.ops))
	for op := range c.ops {
		out = append(out, op)
	}
	slices.Sort(out)
	return out
}
