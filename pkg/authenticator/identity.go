package authenticator

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/localboost/backend/config"
	"github.com/localboost/backend/pkg/crypto"
)

// identityService resolves users from the mini-app SDK credential. The
// credential may be a signed key-value payload (checked locally against the
// provider secret) or an opaque token only the provider can resolve. Probes
// run in a fixed order and the first one yielding a valid record wins.
type identityService struct {
	cfg    config.IdentityConfigs
	client *http.Client
}

func NewIdentityService(cfg config.IdentityConfigs) IIdentityService {
	return &identityService{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *identityService) Service() string {
	return s.cfg.Name
}

func (s *identityService) GetUserContext(ctx context.Context, credential string) (IdentityUser, error) {
	if credential == "" {
		return IdentityUser{}, errors.New("empty credential")
	}

	user, err := s.verifySignedPayload(credential)
	if err == nil {
		return user, nil
	}

	if s.cfg.VerifyURL == "" {
		return IdentityUser{}, err
	}

	return s.verifyRemote(ctx, credential)
}

// verifySignedPayload checks a query-encoded payload whose hash field is the
// hex HMAC-SHA256 of the remaining fields, sorted by key and joined with
// newlines, keyed by SHA256(secret).
func (s *identityService) verifySignedPayload(credential string) (IdentityUser, error) {
	values, err := url.ParseQuery(credential)
	if err != nil {
		return IdentityUser{}, err
	}

	gotHash := values.Get("hash")
	if gotHash == "" {
		return IdentityUser{}, errors.New("no hash field in credential")
	}
	values.Del("hash")

	fields := make([]string, 0, len(values))
	for key := range values {
		fields = append(fields, fmt.Sprintf("%s=%s", key, values.Get(key)))
	}
	sort.Strings(fields)

	secretHash := sha256.Sum256([]byte(s.cfg.SecretKey))
	calculated := crypto.HMAC(sha256.New, []byte(strings.Join(fields, "\n")), secretHash[:])
	if calculated != gotHash {
		return IdentityUser{}, errors.New("mismatched payload hash")
	}

	id := values.Get(s.cfg.IDField)
	if id == "" {
		return IdentityUser{}, fmt.Errorf("no %s field in credential", s.cfg.IDField)
	}

	return IdentityUser{
		ID:          id,
		Username:    values.Get("username"),
		DisplayName: values.Get("display_name"),
		AvatarURL:   values.Get("avatar_url"),
	}, nil
}

func (s *identityService) verifyRemote(ctx context.Context, credential string) (IdentityUser, error) {
	body := strings.NewReader(url.Values{"credential": {credential}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.VerifyURL, body)
	if err != nil {
		return IdentityUser{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return IdentityUser{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return IdentityUser{}, fmt.Errorf("verify url returned status %d", resp.StatusCode)
	}

	profile := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return IdentityUser{}, err
	}

	id, ok := profile[s.cfg.IDField].(string)
	if !ok {
		return IdentityUser{}, fmt.Errorf("invalid id field %s", s.cfg.IDField)
	}

	user := IdentityUser{ID: id}
	if username, ok := profile["username"].(string); ok {
		user.Username = username
	}
	if displayName, ok := profile["display_name"].(string); ok {
		user.DisplayName = displayName
	}
	if avatarURL, ok := profile["avatar_url"].(string); ok {
		user.AvatarURL = avatarURL
	}

	return user, nil
}
