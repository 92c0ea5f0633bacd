package ads

import "testing"

func TestCatalogSizes(t *testing.T) {
	want := []struct {
		name, file string
		w, h       int
	}{
		{"banner", "ad-banner-1080x90.png", 1080, 90},
		{"idle", "ad-idle-1080x240.png", 1080, 240},
		{"side", "ad-side-1080x120.png", 1080, 120},
	}

	all := All()
	if len(all) != len(want) {
		t.Fatalf("catalog size: got %d, want %d", len(all), len(want))
	}
	for i, w := range want {
		a := all[i]
		if a.Name != w.name || a.FileName != w.file {
			t.Errorf("ad[%d]: got %s/%s, want %s/%s", i, a.Name, a.FileName, w.name, w.file)
		}
		if a.Width != w.w || a.Height != w.h {
			t.Errorf("%s: got %dx%d, want %dx%d", a.Name, a.Width, a.Height, w.w, w.h)
		}
	}
}

func TestCatalogGeometryInsideCanvas(t *testing.T) {
	for _, a := range All() {
		for i, r := range a.Rules {
			if r.Y < 0 || r.Y >= a.Height {
				t.Errorf("%s rule[%d]: y=%d outside 0..%d", a.Name, i, r.Y, a.Height-1)
			}
			if 2*r.Margin >= a.Width {
				t.Errorf("%s rule[%d]: margin %d leaves no line", a.Name, i, r.Margin)
			}
		}
		for i, l := range a.Lines {
			if l.Y < 0 || l.Y >= a.Height {
				t.Errorf("%s line[%d]: y=%d outside canvas", a.Name, i, l.Y)
			}
			if l.Text == "" || l.Size <= 0 {
				t.Errorf("%s line[%d]: empty text or size", a.Name, i)
			}
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Name = "mutated"
	if All()[0].Name != "banner" {
		t.Error("All exposed the internal catalog")
	}
}

func TestLookup(t *testing.T) {
	if a, ok := Get("idle"); !ok || a.Height != 240 {
		t.Errorf("Get(idle): got %+v, %v", a, ok)
	}
	if _, ok := Get("nope"); ok {
		t.Error("Get(nope) should fail")
	}
	if a, ok := ByFileName("ad-side-1080x120.png"); !ok || a.Name != "side" {
		t.Errorf("ByFileName: got %+v, %v", a, ok)
	}
}
