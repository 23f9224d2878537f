package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"
)

const (
	keyringService  = "webcraft"
	credentialsFile = "credentials.json"
)

// Store stores one API token per server. Tokens are kept in the OS keyring, if that
// is not available they are written to a file in the global dir instead.
type Store struct {
	globalDir     string
	NoKeyRingMode bool

	mu sync.Mutex
}

// New creates a new Store
func New(globalDir string) *Store {
	return &Store{globalDir: globalDir}
}

// serverKey normalizes the server URL, so "http://host:8080/" and "http://host:8080"
// share their token
func serverKey(server string) string {
	return strings.TrimRight(strings.TrimSpace(server), "/")
}

// Get returns the token for a server. It returns nil (and no error) if there is none.
func (s *Store) Get(server string) (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.NoKeyRingMode {
		raw, err := keyring.Get(keyringService, serverKey(server))
		switch err {
		case nil:
			token := &oauth2.Token{}
			if err := json.Unmarshal([]byte(raw), token); err != nil {
				return nil, errors.Wrap(err, "invalid token in keyring")
			}
			return token, nil
		case keyring.ErrNotFound:
			// the token might be in the file store from an earlier run without keyring
		default:
			s.NoKeyRingMode = true
		}
	}

	tokens, err := s.readFile()
	if err != nil {
		return nil, err
	}
	return tokens[serverKey(server)], nil
}

// Set persists the token for a server
func (s *Store) Set(server string, token *oauth2.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := json.Marshal(token)
	if err != nil {
		return err
	}

	if !s.NoKeyRingMode {
		err := keyring.Set(keyringService, serverKey(server), string(blob))
		if err == nil {
			return nil
		}
		s.NoKeyRingMode = true
	}

	tokens, err := s.readFile()
	if err != nil {
		return err
	}
	tokens[serverKey(server)] = token
	return s.writeFile(tokens)
}

// Delete removes the token of a server. Deleting a missing token is not an error.
func (s *Store) Delete(server string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.NoKeyRingMode {
		err := keyring.Delete(keyringService, serverKey(server))
		if err != nil && err != keyring.ErrNotFound {
			s.NoKeyRingMode = true
		}
	}

	tokens, err := s.readFile()
	if err != nil {
		return err
	}
	if _, ok := tokens[serverKey(server)]; !ok {
		return nil
	}
	delete(tokens, serverKey(server))
	return s.writeFile(tokens)
}

// NewToken wraps an API token
func NewToken(accessToken string) *oauth2.Token {
	return &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}
}

func (s *Store) readFile() (map[string]*oauth2.Token, error) {
	tokens := make(map[string]*oauth2.Token)
	raw, err := os.ReadFile(filepath.Join(s.globalDir, credentialsFile))
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &tokens); err != nil {
			return nil, errors.Wrap(err, "invalid credentials file")
		}
		return tokens, nil
	case os.IsNotExist(err):
		// no file is fine
		return tokens, nil
	default:
		return nil, err
	}
}

func (s *Store) writeFile(tokens map[string]*oauth2.Token) error {
	if err := os.MkdirAll(s.globalDir, 0700); err != nil {
		return err
	}
	blob, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.globalDir, credentialsFile), blob, 0600)
}
