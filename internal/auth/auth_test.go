package auth

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
)

func TestParseKeySpec(t *testing.T) {
	keys, err := ParseKeySpec("abc123=harare-branch:branch, def456=cpc-desk:CPC")
	if err != nil {
		t.Fatalf("ParseKeySpec: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("keys = %d, want 2", len(keys))
	}
	if id := keys["abc123"]; id.ActorID != "harare-branch" || id.Role != RoleBranch {
		t.Errorf("abc123 = %+v", id)
	}
	if id := keys["def456"]; id.Role != RoleCPC {
		t.Errorf("def456 = %+v", id)
	}
}

func TestParseKeySpecErrors(t *testing.T) {
	for _, spec := range []string{"nodelimiter", "key=actoronly", "key=actor:WIZARD"} {
		if _, err := ParseKeySpec(spec); !errors.Is(err, common.ErrConfiguration) {
			t.Errorf("ParseKeySpec(%q) err = %v, want ErrConfiguration", spec, err)
		}
	}
}

func TestParseKeySpecEmpty(t *testing.T) {
	keys, err := ParseKeySpec("")
	if err != nil || len(keys) != 0 {
		t.Fatalf("empty spec: keys=%v err=%v", keys, err)
	}
}

func callWithKey(t *testing.T, provider IdentityProvider, method, key string) error {
	t.Helper()
	ctx := context.Background()
	if key != "" {
		ctx = metadata.NewIncomingContext(ctx, metadata.Pairs(MetadataKey, key))
	}
	interceptor := UnaryInterceptor(provider)
	_, err := interceptor(ctx, nil,
		&grpc.UnaryServerInfo{FullMethod: method},
		func(ctx context.Context, _ any) (any, error) {
			if common.ActorIDFromContext(ctx) == "" {
				t.Error("actor id not attached to context")
			}
			if common.RequestIDFromContext(ctx) == "" {
				t.Error("request id not attached to context")
			}
			return nil, nil
		})
	return err
}

func TestInterceptorRoles(t *testing.T) {
	provider := NewStaticProvider(map[string]Identity{
		"branch-key": {ActorID: "harare", Role: RoleBranch},
		"cpc-key":    {ActorID: "cpc", Role: RoleCPC},
	})

	if err := callWithKey(t, provider, "/aura.v1.TriageService/RunTriage", "branch-key"); err != nil {
		t.Errorf("branch RunTriage: %v", err)
	}

	err := callWithKey(t, provider, "/aura.v1.TriageService/ResolvePackage", "branch-key")
	if status.Code(err) != codes.PermissionDenied {
		t.Errorf("branch ResolvePackage code = %v, want PermissionDenied", status.Code(err))
	}

	if err := callWithKey(t, provider, "/aura.v1.TriageService/ResolvePackage", "cpc-key"); err != nil {
		t.Errorf("cpc ResolvePackage: %v", err)
	}

	err = callWithKey(t, provider, "/aura.v1.TriageService/RunTriage", "wrong-key")
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("unknown key code = %v, want Unauthenticated", status.Code(err))
	}

	err = callWithKey(t, provider, "/aura.v1.TriageService/RunTriage", "")
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("missing key code = %v, want Unauthenticated", status.Code(err))
	}
}

func TestInterceptorOpenMode(t *testing.T) {
	provider := NewStaticProvider(nil)
	if err := callWithKey(t, provider, "/aura.v1.ExtractionService/CorrectField", ""); err != nil {
		t.Errorf("open mode should allow everything, got %v", err)
	}
}
