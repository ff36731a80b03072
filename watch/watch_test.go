package watch

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tailtheme/tailtheme/filesystem"
	"github.com/tailtheme/tailtheme/theme"
)

func writeTheme(path string, cfg theme.Config) {
	out, err := theme.Serialize(cfg, theme.FormatJSON)
	if err != nil {
		panic(err)
	}
	if err := filesystem.API().WriteFile(path, out, 0644); err != nil {
		panic(err)
	}
}

func TestReload(t *testing.T) {
	filesystem.SetMemMapFs()
	defer filesystem.SetOsFs()

	Convey("Given a reloader over an in-memory theme", t, func() {
		const path = "/site/theme.json"
		filesystem.SetMemMapFs()
		r := New(path, theme.DefaultBase(), Options{})

		Convey("Nothing is current before the first reload", func() {
			So(r.Current().IsAbsent(), ShouldBeTrue)
		})

		Convey("A valid theme becomes current", func() {
			writeTheme(path, theme.Nord())

			cfg, err := r.Reload()
			So(err, ShouldBeNil)
			So(cfg, ShouldResemble, theme.Nord())
			So(r.Current().MustGet(), ShouldResemble, theme.Nord())

			Convey("An invalid reload keeps the previous theme", func() {
				broken := theme.Nord()
				broken.Colors["bg"] = "#fff"
				writeTheme(path, broken)

				_, err := r.Reload()

				var verr *theme.ValidationError
				So(errors.As(err, &verr), ShouldBeTrue)
				So(verr.Field, ShouldEqual, "bg")
				So(r.Current().MustGet().Colors["bg"], ShouldEqual, "#212830")
			})

			Convey("A malformed reload keeps the previous theme", func() {
				So(filesystem.API().WriteFile(path, []byte(`{"content": [`), 0644), ShouldBeNil)

				_, err := r.Reload()

				var perr *theme.ParseError
				So(errors.As(err, &perr), ShouldBeTrue)
				So(r.Current().MustGet(), ShouldResemble, theme.Nord())
			})

			Convey("A later valid reload replaces it", func() {
				next := theme.Nord()
				next.Colors["bg"] = "#000000"
				writeTheme(path, next)

				_, err := r.Reload()
				So(err, ShouldBeNil)
				So(r.Current().MustGet().Colors["bg"], ShouldEqual, "#000000")
			})

			Convey("Current hands out copies", func() {
				cfg := r.Current().MustGet()
				cfg.Colors["bg"] = "#000000"
				So(r.Current().MustGet().Colors["bg"], ShouldEqual, "#212830")
			})
		})

		Convey("A failed first reload leaves nothing current", func() {
			_, err := r.Reload()
			So(err, ShouldNotBeNil)
			So(r.Current().IsAbsent(), ShouldBeTrue)
		})

		Convey("Concurrent reloads settle on a valid theme", func() {
			writeTheme(path, theme.Nord())

			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, _ = r.Reload()
				}()
			}
			wg.Wait()

			So(r.Current().MustGet(), ShouldResemble, theme.Nord())
		})
	})
}

func TestWatch(t *testing.T) {
	filesystem.SetOsFs()

	Convey("Given a reloader watching a real file", t, func() {
		path := filepath.Join(t.TempDir(), "theme.json")
		writeTheme(path, theme.Nord())

		reloaded := make(chan theme.Config, 16)
		r := New(path, theme.DefaultBase(), Options{
			Debounce: 10 * time.Millisecond,
			OnReload: func(cfg theme.Config) { reloaded <- cfg },
		})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- r.Watch(ctx) }()

		Convey("A rewrite of the file is picked up", func() {
			next := theme.Nord()
			next.Colors["accent"] = "#bf616a"

			var got theme.Config
			deadline := time.After(5 * time.Second)
		wait:
			for {
				writeTheme(path, next)
				select {
				case got = <-reloaded:
					break wait
				case <-deadline:
					break wait
				case <-time.After(100 * time.Millisecond):
				}
			}

			So(got.Colors["accent"], ShouldEqual, "#bf616a")
			So(r.Current().MustGet().Colors["accent"], ShouldEqual, "#bf616a")
		})

		Reset(func() {
			cancel()
			<-done
		})
	})
}
