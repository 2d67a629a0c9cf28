package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarly/bazarly-go/internal/store"
	"github.com/bazarly/bazarly-go/internal/transport"
	"github.com/bazarly/bazarly-go/models"
)

func TestBidService_Place(t *testing.T) {
	var gotReq models.PlaceBidRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/bids", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"b-1","item_id":"i-1","amount":150,"status":"pending"}}`))
	}))
	defer srv.Close()

	svc := newTestServices(t, srv, newMemCreds())
	bid, err := svc.Bids.Place(context.Background(), models.PlaceBidRequest{ItemID: "i-1", Amount: 150})
	require.NoError(t, err)

	assert.Equal(t, "i-1", gotReq.ItemID)
	assert.Equal(t, "b-1", bid.ID)
	assert.Equal(t, "pending", bid.Status)
}

func TestBidService_ForItemAndMine(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`[{"id":"b-1","amount":100}]`))
	}))
	defer srv.Close()

	svc := newTestServices(t, srv, newMemCreds())
	ctx := context.Background()

	bids, err := svc.Bids.ForItem(ctx, "i-7")
	require.NoError(t, err)
	assert.Len(t, bids, 1)

	_, err = svc.Bids.Mine(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"/items/i-7/bids", "/bids/mine"}, paths)
}

func TestChatService_ConversationsAndMessages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/conversations":
			w.Write([]byte(`[{"id":"conv-1","item_id":"i-1","unread_count":2}]`))
		case "/conversations/conv-1/messages":
			assert.Equal(t, "1", r.URL.Query().Get("page"))
			assert.Equal(t, "30", r.URL.Query().Get("pageSize"))
			w.Write([]byte(`{"items":[{"id":"m-1","text":"hi"},{"id":"m-2","text":"still available?"}],"total":2}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	svc := newTestServices(t, srv, newMemCreds())
	ctx := context.Background()

	convs, err := svc.Chat.Conversations(ctx)
	require.NoError(t, err)
	require.Len(t, convs, 1)
	assert.Equal(t, 2, convs[0].UnreadCount)

	page, err := svc.Chat.Messages(ctx, "conv-1", 1, 30)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.TotalCount)
}

func TestChatService_Send(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/conversations/conv-1/messages", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"m-3","conversation_id":"conv-1","text":"yes"}`))
	}))
	defer srv.Close()

	svc := newTestServices(t, srv, newMemCreds())
	msg, err := svc.Chat.Send(context.Background(), "conv-1", models.SendMessageRequest{Text: "yes"})
	require.NoError(t, err)

	assert.Equal(t, "m-3", msg.ID)
}

func TestListingService_Create_MultipartWithImages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/listings", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Mountain bike", r.FormValue("title"))
		assert.Equal(t, "45000", r.FormValue("price"))
		assert.Equal(t, "c-bikes", r.FormValue("category_id"))

		_, header, err := r.FormFile("images")
		require.NoError(t, err)
		assert.Equal(t, "front.jpg", header.Filename)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"l-1","title":"Mountain bike","price":45000}}`))
	}))
	defer srv.Close()

	svc := newTestServices(t, srv, newMemCreds())

	draft := models.ListingDraft{Title: "Mountain bike", Price: 45000, Currency: "USD", CategoryID: "c-bikes"}
	item, err := svc.Listings.Create(context.Background(), draft,
		[]transport.FilePart{{Field: "images", Name: "front.jpg", ContentType: "image/jpeg", Reader: strings.NewReader("jpeg"), Size: 4}},
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, "l-1", item.ID)
}

func TestListingService_UpdateDeleteMine(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		w.Write([]byte(`{"data":{"id":"l-1"}}`))
	}))
	defer srv.Close()

	svc := newTestServices(t, srv, newMemCreds())
	ctx := context.Background()

	_, err := svc.Listings.Update(ctx, "l-1", models.ListingDraft{Title: "Updated"})
	require.NoError(t, err)
	require.NoError(t, svc.Listings.Delete(ctx, "l-1"))
	_, err = svc.Listings.Mine(ctx)
	require.NoError(t, err)

	assert.Equal(t, []call{
		{http.MethodPut, "/listings/l-1"},
		{http.MethodDelete, "/listings/l-1"},
		{http.MethodGet, "/listings/mine"},
	}, calls)
}

func TestProfileService_Me_CarriesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/me", r.URL.Path)
		require.Equal(t, "Bearer tok-me", r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":{"id":"u-1","name":"Ann","verified":true}}`))
	}))
	defer srv.Close()

	creds := newMemCreds()
	require.NoError(t, creds.Set(context.Background(), store.KeyAuthToken, "tok-me"))

	svc := newTestServices(t, srv, creds)
	user, err := svc.Profile.Me(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "u-1", user.ID)
	assert.True(t, user.Verified)
}

func TestProfileService_Me_SessionExpiry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	creds := newMemCreds()
	require.NoError(t, creds.Set(context.Background(), store.KeyAuthToken, "tok-dead"))

	svc := newTestServices(t, srv, creds)
	_, err := svc.Profile.Me(context.Background())
	require.Error(t, err)

	assert.True(t, transport.IsKind(err, transport.KindSessionExpired))
	_, err = creds.Get(context.Background(), store.KeyAuthToken)
	assert.ErrorIs(t, err, store.ErrKeyNotFound, "token erased after expiry")
}
