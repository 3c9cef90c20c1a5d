//go:build unit

package request_test

import (
	"testing"

	"nightlife-feedback/internal/domain/feedback"
	"nightlife-feedback/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitFeedbackRequest_ToDomain(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	cases := []struct {
		name            string
		req             request.SubmitFeedbackRequest
		wantPhoto       bool
		wantContentType string
	}{
		{
			name:            "sniffs an undeclared photo",
			req:             request.SubmitFeedbackRequest{OverallRating: 4, Photo: png},
			wantPhoto:       true,
			wantContentType: "image/png",
		},
		{
			name:            "keeps the declared content type",
			req:             request.SubmitFeedbackRequest{OverallRating: 4, Photo: png, PhotoContentType: "image/webp", PhotoFilename: "a.webp"},
			wantPhoto:       true,
			wantContentType: "image/webp",
		},
		{
			name: "no photo",
			req:  request.SubmitFeedbackRequest{OverallRating: 4},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := tc.req.ToDomain()

			if !tc.wantPhoto {
				assert.Nil(t, in.Photo)
				return
			}
			require.NotNil(t, in.Photo)
			assert.Equal(t, tc.wantContentType, in.Photo.ContentType)

			sub, err := feedback.NewSubmission(in)
			require.NoError(t, err)
			assert.True(t, sub.HasPhoto())
		})
	}

	t.Run("sniffed text is still rejected by the domain", func(t *testing.T) {
		req := request.SubmitFeedbackRequest{OverallRating: 4, Photo: []byte("plain words")}

		_, err := feedback.NewSubmission(req.ToDomain())
		require.ErrorIs(t, err, feedback.ErrPhotoNotImage)
	})
}
