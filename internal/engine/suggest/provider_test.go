package suggest_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MdAbusufiyan/lab-buddy/internal/core/domain"
	"github.com/MdAbusufiyan/lab-buddy/internal/core/ports/mocks"
	"github.com/MdAbusufiyan/lab-buddy/internal/engine/suggest"
)

func TestProvider_CacheHitsWin(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)
	fetcher := mocks.NewMockRecordFetcher(ctrl)

	store.EXPECT().Keys().Return([]string{"acetone", "ethanol", "ethyl acetate", "methanol"})
	store.EXPECT().Get("ethanol").Return(&domain.ChemicalRecord{Name: "Ethanol"}, true)
	store.EXPECT().Get("ethyl acetate").Return(&domain.ChemicalRecord{Name: "Ethyl acetate"}, true)
	// No Autocomplete expectation: the remote endpoint must not be asked.

	provider := suggest.NewProvider(store, fetcher, 6)
	got, err := provider.Suggest(context.Background(), "eth")
	require.NoError(t, err)

	// Completions carry the casing the record was stored with.
	assert.Equal(t, []string{"Ethanol", "Ethyl acetate"}, got)
}

func TestProvider_CacheScanStopsAtLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)
	fetcher := mocks.NewMockRecordFetcher(ctrl)

	var keys []string
	for i := 0; i < 20; i++ {
		keys = append(keys, fmt.Sprintf("ethanol variant %02d", i))
	}
	store.EXPECT().Keys().Return(keys)
	store.EXPECT().Get(gomock.Any()).Return(nil, false).AnyTimes()

	provider := suggest.NewProvider(store, fetcher, 6)
	got, err := provider.Suggest(context.Background(), "ethanol")
	require.NoError(t, err)
	assert.Len(t, got, 6)
}

func TestProvider_PrefixNormalized(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)
	fetcher := mocks.NewMockRecordFetcher(ctrl)

	store.EXPECT().Keys().Return([]string{"ethyl acetate"})
	// No stored record: the key itself serves as the completion.
	store.EXPECT().Get("ethyl acetate").Return(nil, false)

	provider := suggest.NewProvider(store, fetcher, 6)
	got, err := provider.Suggest(context.Background(), "  ETHYL   ACE")
	require.NoError(t, err)
	assert.Equal(t, []string{"ethyl acetate"}, got)
}

func TestProvider_RemoteFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)
	fetcher := mocks.NewMockRecordFetcher(ctrl)

	store.EXPECT().Keys().Return([]string{"methanol"})
	fetcher.EXPECT().Autocomplete(gomock.Any(), "eth").Return([]string{"ethanol", "ethene"}, nil)

	provider := suggest.NewProvider(store, fetcher, 6)
	got, err := provider.Suggest(context.Background(), "eth")
	require.NoError(t, err)
	assert.Equal(t, []string{"ethanol", "ethene"}, got)
}

func TestProvider_ShortPrefixStaysLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)
	fetcher := mocks.NewMockRecordFetcher(ctrl)

	store.EXPECT().Keys().Return([]string{"methanol"})
	// A one-character prefix never reaches the remote endpoint.

	provider := suggest.NewProvider(store, fetcher, 6)
	got, err := provider.Suggest(context.Background(), "e")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProvider_EmptyPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)
	fetcher := mocks.NewMockRecordFetcher(ctrl)

	provider := suggest.NewProvider(store, fetcher, 6)
	got, err := provider.Suggest(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProvider_RemoteCapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)
	fetcher := mocks.NewMockRecordFetcher(ctrl)

	var remote []string
	for i := 0; i < 25; i++ {
		remote = append(remote, fmt.Sprintf("compound-%02d", i))
	}
	store.EXPECT().Keys().Return(nil)
	fetcher.EXPECT().Autocomplete(gomock.Any(), "compound").Return(remote, nil)

	provider := suggest.NewProvider(store, fetcher, 6)
	got, err := provider.Suggest(context.Background(), "compound")
	require.NoError(t, err)
	assert.Len(t, got, 10)
}

func TestProvider_RemoteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRecordStore(ctrl)
	fetcher := mocks.NewMockRecordFetcher(ctrl)

	store.EXPECT().Keys().Return(nil)
	fetcher.EXPECT().Autocomplete(gomock.Any(), "eth").Return(nil, domain.ErrFetchFailed)

	provider := suggest.NewProvider(store, fetcher, 6)
	_, err := provider.Suggest(context.Background(), "eth")
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}
