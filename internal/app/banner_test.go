package app

import "testing"

func TestBannerLifecycle(t *testing.T) {
	var b banner
	if b.visible() {
		t.Error("fresh banner visible")
	}

	b.show(bannerSuccess, "sent")
	if !b.visible() {
		t.Fatal("shown banner not visible")
	}

	for i := 0; i < bannerTicks-1; i++ {
		b.update()
	}
	if !b.visible() {
		t.Error("banner expired one tick early")
	}
	b.update()
	if b.visible() {
		t.Error("banner still visible after its time")
	}
}

func TestBannerReplaceRestartsClock(t *testing.T) {
	var b banner
	b.show(bannerInfo, "sending")
	for i := 0; i < bannerTicks/2; i++ {
		b.update()
	}
	b.show(bannerError, "failed")
	if b.remaining != bannerTicks {
		t.Errorf("remaining = %d after replace, want %d", b.remaining, bannerTicks)
	}
	if b.level != bannerError || b.text != "failed" {
		t.Errorf("banner = %+v, want replacement", b)
	}
}
