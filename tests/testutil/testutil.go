package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"

	"github.com/rocky-jaiswal/static-site-cdk/config"
)

// Values of the reference site used across tests.
const (
	Domain    = "example.org"
	Account   = "111111111111"
	Region    = "eu-west-1"
	ZoneIDVal = "Z0123456789EXAMPLE"
)

//---------------------------------------------------------------------
// 1. Generic helpers
//---------------------------------------------------------------------

// TmpFile creates a temp file with given content and returns its path.
func TmpFile(t *testing.T, pattern string, content []byte) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), pattern)
	if err != nil {
		t.Fatalf("tmp-file: %v", err)
	}
	if _, err := f.Write(content); err != nil {
		t.Fatalf("tmp-file-write: %v", err)
	}
	f.Close()
	return f.Name()
}

// SiteContents creates a content tree holding an index.html and the given extra files.
func SiteContents(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range append([]string{"index.html"}, files...) {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("site-dir: %v", err)
		}
		if err := os.WriteFile(p, []byte("<html>"+name+"</html>\n"), 0o644); err != nil {
			t.Fatalf("site-file: %v", err)
		}
	}
	return dir
}

//---------------------------------------------------------------------
// 2. Configuration fixtures
//---------------------------------------------------------------------

// Site returns a valid configuration for the reference site serving contents.
func Site(contents string) config.Site {
	return config.Site{
		Domain:   Domain,
		Contents: contents,
		Account:  Account,
		Region:   Region,
	}
}

//---------------------------------------------------------------------
// 3. CDK app fixtures
//---------------------------------------------------------------------

// HostedZoneContextKey is the context key the hosted zone lookup of zoneName reads.
func HostedZoneContextKey(account, zoneName, region string) string {
	return fmt.Sprintf("hosted-zone:account=%s:domainName=%s:region=%s", account, zoneName, region)
}

// NewApp returns an app whose context already answers the hosted zone lookup for the
// reference site, so synthesis does not reach AWS.
func NewApp(extra map[string]any) awscdk.App {
	ctx := map[string]any{
		HostedZoneContextKey(Account, Domain, Region): map[string]any{
			"Id":   "/hostedzone/" + ZoneIDVal,
			"Name": Domain + ".",
		},
	}
	for k, v := range extra {
		ctx[k] = v
	}
	return awscdk.NewApp(&awscdk.AppProps{Context: &ctx})
}
