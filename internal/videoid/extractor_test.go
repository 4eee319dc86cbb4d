package videoid

import "testing"

func TestExtract_AcceptedShapes(t *testing.T) {
	const id = "MS5UjNKw_1M"

	inputs := []string{
		"https://www.youtube.com/watch?v=MS5UjNKw_1M",
		"https://www.youtube.com/watch?v=MS5UjNKw_1M&t=42s",
		"https://www.youtube.com/watch?v=MS5UjNKw_1M#comments",
		"https://www.youtube.com/watch?feature=share&v=MS5UjNKw_1M&list=PL123",
		"https://m.youtube.com/watch?app=desktop&v=MS5UjNKw_1M",
		"youtube.com/watch?v=MS5UjNKw_1M",
		"https://youtu.be/MS5UjNKw_1M",
		"https://youtu.be/MS5UjNKw_1M?si=abcdef&t=3",
		"https://youtu.be/MS5UjNKw_1M#t=3",
		"https://www.youtube.com/embed/MS5UjNKw_1M",
		"https://www.youtube.com/embed/MS5UjNKw_1M?autoplay=1",
		"https://www.youtube-nocookie.com/embed/MS5UjNKw_1M",
		"https://www.youtube.com/v/MS5UjNKw_1M",
		"https://www.youtube.com/e/MS5UjNKw_1M",
		"https://www.youtube.com/shorts/MS5UjNKw_1M",
		"https://www.youtube.com/live/MS5UjNKw_1M?feature=share",
		"https://www.youtube.com/user/SomeChannel#p/u/1/MS5UjNKw_1M",
		"  https://www.youtube.com/watch?v=MS5UjNKw_1M  ",
		"Check this out: https://youtu.be/MS5UjNKw_1M it is great",
		"https://youtu.be/MS5UjNKw_1M and again https://www.youtube.com/watch?v=MS5UjNKw_1M",
		"https://www.youtube.com/watch?v=MS5UjNKw_1M&v=MS5UjNKw_1M",
		`<iframe src="https://www.youtube.com/embed/MS5UjNKw_1M" allowfullscreen>`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, ok := Extract(input)
			if !ok {
				t.Fatalf("Extract(%q) reported not found", input)
			}
			if got != id {
				t.Errorf("Extract(%q) = %q, want %q", input, got, id)
			}
		})
	}
}

func TestExtract_NotFound(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"not a url",
		"https://vimeo.com/123456789",
		"https://www.youtube.com/",
		"https://www.youtube.com/watch?list=PL123",
		"https://www.youtube.com/watch?v=short",
		"https://youtu.be/MS5UjNKw_1MX",
		"MS5UjNKw_1M",
		"https://youtu.be/AAAAAAAAAAA https://youtu.be/BBBBBBBBBBB",
		"https://www.youtube.com/watch?v=AAAAAAAAAAA&v=BBBBBBBBBBB",
		"https://www.youtube.com/watch?v=MS5UjNKw_1M&v=AAAAAAAAAAA",
		"https://www.youtube.com/watch?v=AAAAAAAAAAA?v=BBBBBBBBBBB",
		"https://www.youtube.com/user/name/AAAAAAAAAAA/BBBBBBBBBBB",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if got, ok := Extract(input); ok {
				t.Errorf("Extract(%q) = %q, want not found", input, got)
			}
		})
	}
}

func TestExtract_Deterministic(t *testing.T) {
	input := "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=1"
	first, _ := Extract(input)
	for i := 0; i < 10; i++ {
		if got, _ := Extract(input); got != first {
			t.Fatalf("Extract returned %q then %q", first, got)
		}
	}
}

func TestURLs(t *testing.T) {
	if got := EmbedURL("MS5UjNKw_1M"); got != "https://www.youtube.com/embed/MS5UjNKw_1M" {
		t.Errorf("EmbedURL = %q", got)
	}
	if got := WatchURL("MS5UjNKw_1M"); got != "https://www.youtube.com/watch?v=MS5UjNKw_1M" {
		t.Errorf("WatchURL = %q", got)
	}

	// The canonical URLs round-trip through the extractor
	for _, u := range []string{EmbedURL("dQw4w9WgXcQ"), WatchURL("dQw4w9WgXcQ")} {
		if id, ok := Extract(u); !ok || id != "dQw4w9WgXcQ" {
			t.Errorf("Extract(%q) = %q, %v", u, id, ok)
		}
	}
}
