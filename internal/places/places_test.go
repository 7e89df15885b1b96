package places

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

type fakeMaps struct {
	autocompleteCalls int
	detailsCalls      int
	autocompleteErr   error
}

func (f *fakeMaps) PlaceAutocomplete(_ context.Context, r *maps.PlaceAutocompleteRequest) (maps.AutocompleteResponse, error) {
	f.autocompleteCalls++
	if f.autocompleteErr != nil {
		return maps.AutocompleteResponse{}, f.autocompleteErr
	}
	return maps.AutocompleteResponse{
		Predictions: []maps.AutocompletePrediction{
			{
				PlaceID:     "place-osteria",
				Description: "Osteria del Tempo Perso, " + r.Input,
				StructuredFormatting: maps.AutocompleteStructuredFormatting{
					MainText:      "Osteria del Tempo Perso",
					SecondaryText: "Ostuni, Italy",
				},
			},
		},
	}, nil
}

func (f *fakeMaps) PlaceDetails(_ context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error) {
	f.detailsCalls++
	return maps.PlaceDetailsResult{
		Name:             "Osteria del Tempo Perso",
		FormattedAddress: "Via Gaetano Tanzarella Vitale 47, Ostuni",
		Rating:           4.6,
		Types:            []string{"restaurant"},
		Geometry: maps.AddressGeometry{
			Location: maps.LatLng{Lat: 40.7291, Lng: 17.5786},
		},
	}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Disabled(t *testing.T) {
	service, err := NewService("", time.Minute, quietLogger())
	require.NoError(t, err)

	assert.False(t, service.Enabled())

	_, err = service.Search(context.Background(), "osteria")
	assert.ErrorIs(t, err, ErrDisabled)

	_, err = service.Details(context.Background(), "place-osteria")
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestService_Search(t *testing.T) {
	t.Run("maps predictions to the console shape", func(t *testing.T) {
		fake := &fakeMaps{}
		service := newServiceWithClient(fake, time.Minute, quietLogger())

		predictions, err := service.Search(context.Background(), "osteria")
		require.NoError(t, err)
		require.Len(t, predictions, 1)
		assert.Equal(t, "place-osteria", predictions[0].PlaceID)
		assert.Equal(t, "Osteria del Tempo Perso", predictions[0].MainText)
		assert.Equal(t, "Ostuni, Italy", predictions[0].SecondaryText)
	})

	t.Run("caches per query within the TTL", func(t *testing.T) {
		fake := &fakeMaps{}
		service := newServiceWithClient(fake, time.Minute, quietLogger())

		_, err := service.Search(context.Background(), "osteria")
		require.NoError(t, err)
		_, err = service.Search(context.Background(), "osteria")
		require.NoError(t, err)
		assert.Equal(t, 1, fake.autocompleteCalls)

		_, err = service.Search(context.Background(), "trattoria")
		require.NoError(t, err)
		assert.Equal(t, 2, fake.autocompleteCalls)
	})

	t.Run("zero TTL disables the cache", func(t *testing.T) {
		fake := &fakeMaps{}
		service := newServiceWithClient(fake, 0, quietLogger())

		for i := 0; i < 2; i++ {
			_, err := service.Search(context.Background(), "osteria")
			require.NoError(t, err)
		}
		assert.Equal(t, 2, fake.autocompleteCalls)
	})

	t.Run("propagates upstream failures", func(t *testing.T) {
		fake := &fakeMaps{autocompleteErr: errors.New("quota exceeded")}
		service := newServiceWithClient(fake, time.Minute, quietLogger())

		_, err := service.Search(context.Background(), "osteria")
		assert.ErrorContains(t, err, "quota exceeded")
	})
}

func TestService_Details(t *testing.T) {
	fake := &fakeMaps{}
	service := newServiceWithClient(fake, time.Minute, quietLogger())

	summary, err := service.Details(context.Background(), "place-osteria")
	require.NoError(t, err)
	assert.Equal(t, "place-osteria", summary.PlaceID)
	assert.Equal(t, "Osteria del Tempo Perso", summary.Name)
	assert.InDelta(t, 40.7291, summary.Lat, 0.0001)

	_, err = service.Details(context.Background(), "place-osteria")
	require.NoError(t, err)
	assert.Equal(t, 1, fake.detailsCalls)
}
