package ofp

import (
	"bytes"
	"errors"
	"testing"
)

func TestBundleControlEncodeGolden(t *testing.T) {
	ctx, err := ContextForVersion(V15)
	if err != nil {
		t.Fatal(err)
	}

	msg := BundleControl{
		BundleID: 99999999,
		Type:     BundleCtrlOpenReply,
		Flags:    BundleFlagAtomic,
	}
	got, err := msg.Encode(ctx)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	want := []byte{
		0x06, 0x21, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00, // header
		0x05, 0xf5, 0xe0, 0xff, // bundle_id
		0x00, 0x01, // OPEN_REPLY
		0x00, 0x01, // ATOMIC
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode = %x, want %x", got, want)
	}
}

func TestBundleControlRequiresBundleSupport(t *testing.T) {
	ctx, err := ContextForVersion(V13)
	if err != nil {
		t.Fatal(err)
	}
	_, err = BundleControl{BundleID: 1}.Encode(ctx)
	if err == nil {
		t.Fatal("Encode succeeded on OpenFlow 1.3, want error")
	}
	if !errors.Is(err, ErrUnsupportedMessage) {
		t.Errorf("error = %v, want ErrUnsupportedMessage", err)
	}
}

func TestBundleControlVersion14(t *testing.T) {
	ctx, err := ContextForVersion(V14)
	if err != nil {
		t.Fatal(err)
	}
	got, err := BundleControl{BundleID: 7, Type: BundleCtrlCommitRequest}.Encode(ctx)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if got[0] != byte(V14) {
		t.Errorf("version byte = 0x%02x, want 0x05", got[0])
	}
	if got[1] != TypeBundleControl {
		t.Errorf("type byte = %d, want %d", got[1], TypeBundleControl)
	}
	if len(got) != 16 {
		t.Errorf("message length = %d, want 16", len(got))
	}
}
