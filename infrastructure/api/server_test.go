package api_test

import (
	"chat-bridge/auth"
	"chat-bridge/domain"
	"chat-bridge/infrastructure/api"
	"chat-bridge/observability"
	"chat-bridge/runtime"
	"chat-bridge/services"
	"chat-bridge/signer/remote"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/nbd-wtf/go-nostr"
	"github.com/stretchr/testify/require"
)

type harness struct {
	core   *runtime.Core
	server *httptest.Server
	token  string
}

func newHarness(t *testing.T) harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	core := runtime.NewCore(log, runtime.Config{BufferSize: 16, SearchRadiusCap: 10, SearchRadiusTimeout: time.Second})
	monitor := observability.NewMonitor(log)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	token, err := issuer.GenerateToken("desktop", []string{"host"})
	require.NoError(t, err)

	s := api.NewServer(log, monitor, core, services.NewSignerService(log, core, monitor), auth.NewInterceptor(issuer))
	srv := httptest.NewServer(s.Routes())
	t.Cleanup(func() {
		srv.Close()
		core.Close()
	})
	return harness{core: core, server: srv, token: token}
}

func (h harness) dialSigner(pubkey string, token string) (*websocket.Conn, *http.Response, error) {
	u := "ws" + strings.TrimPrefix(h.server.URL, "http") + "/signer/ws?pubkey=" + url.QueryEscape(pubkey)
	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}
	return websocket.DefaultDialer.Dial(u, header)
}

// answerSignRequests plays the host signer app until the socket closes.
func answerSignRequests(conn *websocket.Conn, secret string) {
	for {
		var request remote.Request
		if err := conn.ReadJSON(&request); err != nil {
			return
		}
		reply := remote.Reply{ID: request.ID}
		switch {
		case request.Op == remote.OpSignEvent:
			var evt nostr.Event
			if err := json.Unmarshal([]byte(request.Content), &evt); err != nil {
				reply.Error = err.Error()
				break
			}
			if err := evt.Sign(secret); err != nil {
				reply.Error = err.Error()
				break
			}
			signed, _ := json.Marshal(&evt)
			reply.Result = string(signed)
		default:
			reply.Error = "unsupported"
		}
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

// closeSocket sends a close frame while answerSignRequests may still be
// writing. WriteControl is the only write gorilla allows concurrently.
func closeSocket(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	err := conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"), time.Now().Add(time.Second))
	require.NoError(t, err)
	_ = conn.Close()
}

func TestServer_Healthz(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	pk, err := nostr.GetPublicKey(nostr.GeneratePrivateKey())
	req.NoError(err)
	h.core.CreateAccount(domain.PublicKey(pk), domain.Metadata{Name: "alice"})

	resp, err := http.Get(h.server.URL + "/healthz")
	req.NoError(err)
	defer resp.Body.Close()

	req.Equal(http.StatusOK, resp.StatusCode)
	var body struct {
		Status string        `json:"status"`
		Core   runtime.Stats `json:"core"`
	}
	req.NoError(json.NewDecoder(resp.Body).Decode(&body))
	req.Equal("ok", body.Status)
	req.Equal(1, body.Core.Accounts)
}

func TestServer_Signer_Socket_Rejects_Before_Upgrade(t *testing.T) {
	h := newHarness(t)
	pk, err := nostr.GetPublicKey(nostr.GeneratePrivateKey())
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		_, resp, err := h.dialSigner(pk, "")
		require.ErrorIs(t, err, websocket.ErrBadHandshake)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("invalid pubkey", func(t *testing.T) {
		_, resp, err := h.dialSigner("npub1nothing", h.token)
		require.ErrorIs(t, err, websocket.ErrBadHandshake)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_Signer_Socket_Lifecycle(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	secret := nostr.GeneratePrivateKey()
	hexKey, err := nostr.GetPublicKey(secret)
	req.NoError(err)
	pubkey := domain.PublicKey(hexKey)

	// Given a host answering sign requests with the account key
	conn, _, err := h.dialSigner(pubkey.Npub(), h.token)
	req.NoError(err)
	go answerSignRequests(conn, secret)

	// Then the signer is registered and its key package published
	req.Eventually(func() bool {
		_, ok := h.core.KeyPackage(pubkey)
		return ok
	}, 2*time.Second, 10*time.Millisecond)
	_, registered := h.core.Signer(pubkey)
	req.True(registered)
	account, err := h.core.FindAccountByPubkey(t.Context(), pubkey)
	req.NoError(err)
	req.True(account.ExternalSigner)

	// When the host closes the socket
	closeSocket(t, conn)

	// Then the signer is detached
	req.Eventually(func() bool {
		_, ok := h.core.Signer(pubkey)
		return !ok
	}, 2*time.Second, 10*time.Millisecond)
}

func TestServer_Signer_Socket_Refused_Login_Closes_With_Reason(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	secret := nostr.GeneratePrivateKey()
	hexKey, err := nostr.GetPublicKey(secret)
	req.NoError(err)

	conn, _, err := h.dialSigner(hexKey, h.token)
	req.NoError(err)
	defer conn.Close()

	// The host refuses to sign the key package
	var request remote.Request
	req.NoError(conn.ReadJSON(&request))
	req.Equal(remote.OpSignEvent, request.Op)
	req.NoError(conn.WriteJSON(remote.Reply{ID: request.ID, Error: "user refused"}))

	_, _, err = conn.ReadMessage()
	req.True(websocket.IsCloseError(err, api.CloseLoginFailed))
	_, registered := h.core.Signer(domain.PublicKey(hexKey))
	req.False(registered)
}

func TestServer_Stale_Socket_Close_Keeps_Newer_Signer(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	secret := nostr.GeneratePrivateKey()
	hexKey, err := nostr.GetPublicKey(secret)
	req.NoError(err)
	pubkey := domain.PublicKey(hexKey)

	// Given a first socket logged in
	first, _, err := h.dialSigner(hexKey, h.token)
	req.NoError(err)
	go answerSignRequests(first, secret)
	req.Eventually(func() bool {
		_, ok := h.core.Signer(pubkey)
		return ok
	}, 2*time.Second, 10*time.Millisecond)
	firstSigner, _ := h.core.Signer(pubkey)

	// And a second socket for the same pubkey replacing it
	second, _, err := h.dialSigner(hexKey, h.token)
	req.NoError(err)
	go answerSignRequests(second, secret)
	req.Eventually(func() bool {
		current, ok := h.core.Signer(pubkey)
		return ok && current != firstSigner
	}, 2*time.Second, 10*time.Millisecond)
	secondSigner, _ := h.core.Signer(pubkey)

	// When the first socket closes late
	closeSocket(t, first)

	// Then the second signer stays registered
	req.Never(func() bool {
		current, ok := h.core.Signer(pubkey)
		return !ok || current != secondSigner
	}, 300*time.Millisecond, 10*time.Millisecond)

	// And closing the second socket detaches it
	closeSocket(t, second)
	req.Eventually(func() bool {
		_, ok := h.core.Signer(pubkey)
		return !ok
	}, 2*time.Second, 10*time.Millisecond)
}
