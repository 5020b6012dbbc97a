package session

import (
	"bytes"           // Gob buffer
	"context"         // Redis calls
	"encoding/base32" // Session id encoding
	"encoding/gob"    // Session value encoding
	"fmt"             // Error wrapping
	"net/http"        // Cookies
	"strings"         // Id trimming
	"time"            // Key expiry

	"github.com/gin-contrib/sessions"             // Gin session middleware
	gorillasessions "github.com/gorilla/sessions" // Underlying session type
	"github.com/gorilla/securecookie"             // Signed session id cookie
	"github.com/redis/go-redis/v9"                // Redis client
)

const redisKeyPrefix = "cashflow:session:"

// RedisStore keeps session values in Redis; the cookie only carries the
// signed session id.
type RedisStore struct {
	client  *redis.Client        // Redis connection
	codecs  []securecookie.Codec // Cookie signing keys
	options sessions.Options     // Cookie attributes
}

// NewRedisStore creates a store backed by client
func NewRedisStore(client *redis.Client, opts Options, keyPairs ...[]byte) *RedisStore {
	return &RedisStore{
		client:  client,
		codecs:  securecookie.CodecsFromPairs(keyPairs...),
		options: cookieOptions(opts),
	}
}

// Options sets the cookie options for new sessions
func (s *RedisStore) Options(opts sessions.Options) {
	s.options = opts
}

// Get returns the session cached for the request, loading it if needed
func (s *RedisStore) Get(r *http.Request, name string) (*gorillasessions.Session, error) {
	return gorillasessions.GetRegistry(r).Get(s, name)
}

// New loads the session named by the request cookie or starts an empty one
func (s *RedisStore) New(r *http.Request, name string) (*gorillasessions.Session, error) {
	session := gorillasessions.NewSession(s, name)
	opts := s.options.ToGorillaOptions()
	session.Options = opts
	session.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return session, nil // No cookie yet
	}
	if err := securecookie.DecodeMulti(name, c.Value, &session.ID, s.codecs...); err != nil {
		return session, nil // Tampered or rotated key, start over
	}
	found, err := s.load(r.Context(), session)
	if err != nil {
		return session, err
	}
	session.IsNew = !found
	return session, nil
}

// Save writes the session to Redis and refreshes the cookie
func (s *RedisStore) Save(r *http.Request, w http.ResponseWriter, session *gorillasessions.Session) error {
	if session.Options.MaxAge < 0 {
		if err := s.client.Del(r.Context(), redisKeyPrefix+session.ID).Err(); err != nil {
			return err
		}
		http.SetCookie(w, gorillasessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = strings.TrimRight(base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)), "=")
	}
	if err := s.save(r.Context(), session); err != nil {
		return err
	}
	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return err
	}
	http.SetCookie(w, gorillasessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

func (s *RedisStore) save(ctx context.Context, session *gorillasessions.Session) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(session.Values); err != nil {
		return fmt.Errorf("encode session values: %w", err)
	}
	ttl := time.Duration(session.Options.MaxAge) * time.Second
	if ttl <= 0 {
		ttl = time.Duration(s.options.MaxAge) * time.Second
	}
	return s.client.Set(ctx, redisKeyPrefix+session.ID, buf.Bytes(), ttl).Err()
}

func (s *RedisStore) load(ctx context.Context, session *gorillasessions.Session) (bool, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+session.ID).Bytes()
	if err == redis.Nil {
		return false, nil // Expired or never saved
	}
	if err != nil {
		return false, err
	}
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&session.Values); err != nil {
		return false, fmt.Errorf("decode session values: %w", err)
	}
	return true, nil
}
