package discord_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/bsubei/squadrot/internal/adapters/notify/discord"
)

func TestWebhookNotify(t *testing.T) {
	Convey("Given a webhook endpoint", t, func() {
		var (
			gotBody        []byte
			gotContentType string
		)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotBody, _ = io.ReadAll(r.Body)
			gotContentType = r.Header.Get("Content-Type")
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		Convey("When posting plain content", func() {
			w := discord.NewWebhook(srv.URL)
			err := w.Notify(context.Background(), "New map rotation", "1. Chora AAS v1 (any)", "run abc")

			Convey("Then the payload carries the title and summary", func() {
				So(err, ShouldBeNil)
				So(gotContentType, ShouldEqual, "application/json")

				var payload struct {
					Content string `json:"content"`
				}
				So(json.Unmarshal(gotBody, &payload), ShouldBeNil)
				So(payload.Content, ShouldContainSubstring, "New map rotation")
				So(payload.Content, ShouldContainSubstring, "Chora AAS v1")
			})
		})

		Convey("When posting as an embed", func() {
			w := discord.NewWebhook(srv.URL, discord.WithEmbed(true))
			err := w.Notify(context.Background(), "New map rotation", "1. Chora AAS v1 (any)", "run abc")

			Convey("Then the payload carries one embed with footer", func() {
				So(err, ShouldBeNil)

				var payload struct {
					Embeds []struct {
						Title       string `json:"title"`
						Description string `json:"description"`
						Footer      struct {
							Text string `json:"text"`
						} `json:"footer"`
					} `json:"embeds"`
				}
				So(json.Unmarshal(gotBody, &payload), ShouldBeNil)
				So(len(payload.Embeds), ShouldEqual, 1)
				So(payload.Embeds[0].Title, ShouldEqual, "New map rotation")
				So(payload.Embeds[0].Description, ShouldContainSubstring, "Chora AAS v1")
				So(payload.Embeds[0].Footer.Text, ShouldEqual, "run abc")
			})
		})
	})

	Convey("Given an endpoint rejecting the post", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad webhook", http.StatusBadRequest)
		}))
		defer srv.Close()

		err := discord.NewWebhook(srv.URL).Notify(context.Background(), "t", "s", "f")

		Convey("Then the status and body surface in the error", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "400")
			So(err.Error(), ShouldContainSubstring, "bad webhook")
		})
	})

	Convey("The notifier names itself for logs", t, func() {
		So(discord.NewWebhook("http://example.invalid").Name(), ShouldEqual, "discord")
	})
}
