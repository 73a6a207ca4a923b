package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ofplab/ofpdgen/internal/ofp"
)

func runMatrix(t *testing.T, dir string, versions []ProtocolVersion, messages []MessageSpec) []Result {
	t.Helper()
	h := &Harness{BaseDir: dir, Versions: versions, Messages: messages}
	results, err := h.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	return results
}

func TestFixturePath(t *testing.T) {
	v := ProtocolVersion{Label: "OFP15", DirTag: "of15", Wire: ofp.V15}
	m := MessageSpec{Name: "packet_in"}
	got := FixturePath("packet_data", v, m)
	want := filepath.Join("packet_data", "of15", "libofproto-OFP15-packet_in.packet")
	if got != want {
		t.Errorf("FixturePath = %q, want %q", got, want)
	}
}

func TestRunCompleteness(t *testing.T) {
	dir := t.TempDir()
	versions := DefaultVersions()
	messages := DefaultMessages()
	results := runMatrix(t, dir, versions, messages)

	if want := len(versions) * len(messages); len(results) != want {
		t.Fatalf("got %d results, want %d", len(results), want)
	}
	for _, v := range versions {
		for _, m := range messages {
			path := FixturePath(dir, v, m)
			info, err := os.Stat(path)
			if err != nil {
				t.Errorf("fixture %s/%s: %v", v.Label, m.Name, err)
				continue
			}
			if info.Size() == 0 {
				t.Errorf("fixture %s is empty", path)
			}
		}
	}
}

func TestRunScenarioOFP15(t *testing.T) {
	dir := t.TempDir()
	results := runMatrix(t, dir, DefaultVersions(), DefaultMessages())

	wantFiles := []string{
		filepath.Join(dir, "of15", "libofproto-OFP15-packet_in.packet"),
		filepath.Join(dir, "of15", "libofproto-OFP15-bundle_ctrl.packet"),
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for i, want := range wantFiles {
		if results[i].Path != want {
			t.Errorf("results[%d].Path = %q, want %q", i, results[i].Path, want)
		}
	}

	// Both fixtures start with the OFP15 version byte and their
	// message type code.
	checks := []struct {
		path    string
		msgType byte
	}{
		{wantFiles[0], ofp.TypePacketIn},
		{wantFiles[1], ofp.TypeBundleControl},
	}
	for _, c := range checks {
		data, err := os.ReadFile(c.path)
		if err != nil {
			t.Fatal(err)
		}
		if len(data) < 8 {
			t.Fatalf("%s: truncated message (%d bytes)", c.path, len(data))
		}
		if data[0] != byte(ofp.V15) {
			t.Errorf("%s: version byte = 0x%02x, want 0x06", c.path, data[0])
		}
		if data[1] != c.msgType {
			t.Errorf("%s: type byte = %d, want %d", c.path, data[1], c.msgType)
		}
	}
}

func TestRunDeterminism(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	versions := DefaultVersions()
	messages := DefaultMessages()

	runMatrix(t, dirA, versions, messages)
	runMatrix(t, dirB, versions, messages)

	for _, v := range versions {
		for _, m := range messages {
			a, err := os.ReadFile(FixturePath(dirA, v, m))
			if err != nil {
				t.Fatal(err)
			}
			b, err := os.ReadFile(FixturePath(dirB, v, m))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(a, b) {
				t.Errorf("fixture %s/%s differs between runs", v.Label, m.Name)
			}
		}
	}
}

func TestRunOrderIndependence(t *testing.T) {
	versions := []ProtocolVersion{
		{Label: "OFP15", DirTag: "of15", Wire: ofp.V15},
		{Label: "OFP14", DirTag: "of14", Wire: ofp.V14},
	}
	reversedVersions := []ProtocolVersion{versions[1], versions[0]}

	messages := DefaultMessages()
	reversedMessages := []MessageSpec{messages[1], messages[0]}

	dirA := t.TempDir()
	dirB := t.TempDir()
	runMatrix(t, dirA, versions, messages)
	runMatrix(t, dirB, reversedVersions, reversedMessages)

	for _, v := range versions {
		for _, m := range messages {
			a, err := os.ReadFile(FixturePath(dirA, v, m))
			if err != nil {
				t.Fatal(err)
			}
			b, err := os.ReadFile(FixturePath(dirB, v, m))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(a, b) {
				t.Errorf("fixture %s/%s depends on traversal order", v.Label, m.Name)
			}
		}
	}
}

func TestRunFailFast(t *testing.T) {
	dir := t.TempDir()
	versions := DefaultVersions()
	messages := []MessageSpec{
		DefaultMessages()[0],
		{
			Name: "broken",
			Generate: func(*ofp.Context) ([]byte, error) {
				return nil, fmt.Errorf("boom")
			},
		},
		{
			Name: "never_reached",
			Generate: func(ctx *ofp.Context) ([]byte, error) {
				return DefaultPacketIn().Encode(ctx)
			},
		},
	}

	h := &Harness{BaseDir: dir, Versions: versions, Messages: messages}
	results, err := h.Run()
	if err == nil {
		t.Fatal("Run succeeded, want error")
	}
	if results != nil {
		t.Errorf("Run returned results alongside an error")
	}
	var eerr *EncodeError
	if !errors.As(err, &eerr) {
		t.Fatalf("error = %T, want *EncodeError", err)
	}
	if eerr.Message != "broken" || eerr.Version != "OFP15" {
		t.Errorf("EncodeError identifies %s/%s, want OFP15/broken", eerr.Version, eerr.Message)
	}

	// The failure stops the matrix: nothing after the broken pair
	// is written, while the pair before it is.
	if _, err := os.Stat(FixturePath(dir, versions[0], messages[0])); err != nil {
		t.Errorf("fixture before the failure missing: %v", err)
	}
	if _, err := os.Stat(FixturePath(dir, versions[0], messages[2])); !os.IsNotExist(err) {
		t.Errorf("fixture after the failure exists (stat err %v)", err)
	}
}

func TestRunUnknownVersion(t *testing.T) {
	dir := t.TempDir()
	versions := []ProtocolVersion{{Label: "OFP99", DirTag: "of99", Wire: 0x63}}

	h := &Harness{BaseDir: dir, Versions: versions, Messages: DefaultMessages()}
	_, err := h.Run()
	if err == nil {
		t.Fatal("Run succeeded with unknown wire version, want error")
	}
	var verr *VersionError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %T, want *VersionError", err)
	}
	if !errors.Is(err, ofp.ErrUnknownVersion) {
		t.Errorf("error chain does not include ErrUnknownVersion: %v", err)
	}
	// No output directory is created for the bad version.
	if _, err := os.Stat(filepath.Join(dir, "of99")); !os.IsNotExist(err) {
		t.Errorf("directory created for unknown version (stat err %v)", err)
	}
}

func TestRunEmptyRegistries(t *testing.T) {
	dir := t.TempDir()

	h := &Harness{BaseDir: dir, Versions: nil, Messages: DefaultMessages()}
	results, err := h.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("empty version registry produced %d results", len(results))
	}

	h = &Harness{BaseDir: dir, Versions: DefaultVersions(), Messages: nil}
	results, err = h.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("empty message registry produced %d results", len(results))
	}
}

func TestBundleCtrlRejectedForOFP13(t *testing.T) {
	dir := t.TempDir()
	versions := []ProtocolVersion{{Label: "OFP13", DirTag: "of13", Wire: ofp.V13}}

	h := &Harness{BaseDir: dir, Versions: versions, Messages: DefaultMessages()}
	_, err := h.Run()
	if err == nil {
		t.Fatal("Run succeeded, want bundle encoding error on OpenFlow 1.3")
	}
	if !errors.Is(err, ofp.ErrUnsupportedMessage) {
		t.Errorf("error = %v, want ErrUnsupportedMessage in chain", err)
	}
}
