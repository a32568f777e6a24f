package tokens

import (
	"time"
	"unicode/utf8"

	"github.com/roomgate/roomgate/internal/apperrors"
	"github.com/roomgate/roomgate/internal/models"
	"github.com/roomgate/roomgate/pkg/auth"
	"github.com/roomgate/roomgate/pkg/sanitize"
)

const maxDisplayNameLength = 50

const (
	RoleHost        = "host"
	RoleCohost      = "cohost"
	RoleParticipant = "participant"
)

// RoomGetter is the one capability the issuer needs from the lifecycle
// manager: a point-in-time room read.
type RoomGetter interface {
	Get(id string) (*models.Room, error)
}

// Grant is the issuance result: a signed token plus the realtime endpoint
// the client should connect to.
type Grant struct {
	Token     string
	Endpoint  string
	ExpiresAt time.Time
}

// Issuer mints room-scoped join credentials. It holds no state beyond its
// collaborators; every call is a single room read plus a signing operation.
type Issuer struct {
	rooms    RoomGetter
	jwt      *auth.JWTManager
	ttl      time.Duration
	endpoint string
}

func NewIssuer(rooms RoomGetter, jwtMgr *auth.JWTManager, ttl time.Duration, endpoint string) *Issuer {
	return &Issuer{rooms: rooms, jwt: jwtMgr, ttl: ttl, endpoint: endpoint}
}

// Issue validates the request, checks that the room is joinable right now
// and signs a token for it.
//
// A missing room and a closed room both come back as ErrRoomUnavailable;
// callers cannot tell the cases apart.
func (i *Issuer) Issue(roomID, role, displayName string) (*Grant, error) {
	switch role {
	case RoleHost, RoleCohost, RoleParticipant:
	default:
		return nil, apperrors.NewValidation("role", "must be host, cohost or participant")
	}
	if l := utf8.RuneCountInString(displayName); l < 1 || l > maxDisplayNameLength {
		return nil, apperrors.NewValidation("display_name", "must be 1-50 characters")
	}

	room, err := i.rooms.Get(roomID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrRoomUnavailable
		}
		return nil, err
	}
	if !room.Joinable() {
		return nil, apperrors.ErrRoomUnavailable
	}

	// Length was already validated; sanitization only strips markup.
	identity := sanitize.DisplayName(displayName)

	token, err := i.jwt.Generate(room.ID.String(), role, identity)
	if err != nil {
		return nil, &apperrors.SigningError{Err: err}
	}

	return &Grant{
		Token:     token,
		Endpoint:  i.endpoint,
		ExpiresAt: time.Now().Add(i.ttl),
	}, nil
}
