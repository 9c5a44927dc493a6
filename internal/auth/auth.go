package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/TadiwanasheNdombo/aura-document-system/internal/common"
)

// Role is the coarse permission level of a caller. Branch staff submit
// and triage packages; the central processing centre (CPC) additionally
// corrects fields and resolves flagged packages.
type Role string

const (
	RoleBranch Role = "BRANCH"
	RoleCPC    Role = "CPC"
)

// MetadataKey is the gRPC metadata header carrying the caller's API key.
const MetadataKey = "x-api-key"

type Identity struct {
	ActorID string
	Role    Role
}

// IdentityProvider resolves the caller identity from an incoming context.
type IdentityProvider interface {
	Authenticate(ctx context.Context) (Identity, error)
}

// StaticProvider maps API keys to identities. Keys come from
// configuration; an empty map disables authentication entirely, which
// is the local development mode.
type StaticProvider struct {
	keys map[string]Identity
}

func NewStaticProvider(keys map[string]Identity) *StaticProvider {
	return &StaticProvider{keys: keys}
}

// ParseKeySpec parses "key=actor:role,key2=actor2:role2" into a key map.
func ParseKeySpec(spec string) (map[string]Identity, error) {
	keys := map[string]Identity{}
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, rest, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, common.NewAppError("CONFIG_ERROR",
				"auth key entry missing '=': "+entry, common.ErrConfiguration)
		}
		actor, roleStr, ok := strings.Cut(rest, ":")
		if !ok {
			return nil, common.NewAppError("CONFIG_ERROR",
				"auth key entry missing role: "+entry, common.ErrConfiguration)
		}
		role := Role(strings.ToUpper(strings.TrimSpace(roleStr)))
		if role != RoleBranch && role != RoleCPC {
			return nil, common.NewAppError("CONFIG_ERROR",
				"unknown role "+string(role), common.ErrConfiguration)
		}
		keys[strings.TrimSpace(key)] = Identity{ActorID: strings.TrimSpace(actor), Role: role}
	}
	return keys, nil
}

// Enabled reports whether any keys are configured.
func (p *StaticProvider) Enabled() bool { return len(p.keys) > 0 }

func (p *StaticProvider) Authenticate(ctx context.Context) (Identity, error) {
	if !p.Enabled() {
		return Identity{ActorID: "local", Role: RoleCPC}, nil
	}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return Identity{}, status.Error(codes.Unauthenticated, "missing metadata")
	}
	values := md.Get(MetadataKey)
	if len(values) == 0 {
		return Identity{}, status.Error(codes.Unauthenticated, "missing "+MetadataKey)
	}
	id, ok := p.keys[values[0]]
	if !ok {
		return Identity{}, status.Error(codes.Unauthenticated, "unknown api key")
	}
	return id, nil
}

// cpcOnly lists the full method names that require the CPC role.
var cpcOnly = map[string]struct{}{
	"/aura.v1.TriageService/ResolvePackage":    {},
	"/aura.v1.ExtractionService/CorrectField":  {},
	"/aura.v1.ExportService/ExportCorrections": {},
}

// UnaryInterceptor authenticates every call, attaches the actor and a
// request id to the context, and enforces CPC-only methods.
func UnaryInterceptor(provider IdentityProvider) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		id, err := provider.Authenticate(ctx)
		if err != nil {
			return nil, err
		}
		if _, restricted := cpcOnly[info.FullMethod]; restricted && id.Role != RoleCPC {
			return nil, status.Error(codes.PermissionDenied, "requires CPC role")
		}
		ctx = common.WithActorID(ctx, id.ActorID)
		ctx = common.WithRequestID(ctx, uuid.NewString())
		return handler(ctx, req)
	}
}
