package targeting

import "testing"

func TestBuild(t *testing.T) {
	ctx, err := Build("user-20250101-0930", map[string]string{
		"plan":   "free",
		"region": "eu-west",
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := ctx.Key(); got != "user-20250101-0930" {
		t.Errorf("Key = %q, want %q", got, "user-20250101-0930")
	}
	if got := ctx.GetValue("plan").StringValue(); got != "free" {
		t.Errorf("plan = %q, want %q", got, "free")
	}
	if got := ctx.GetValue("region").StringValue(); got != "eu-west" {
		t.Errorf("region = %q, want %q", got, "eu-west")
	}
}

func TestBuildNoAttributes(t *testing.T) {
	ctx, err := Build("user-1", nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := ctx.Key(); got != "user-1" {
		t.Errorf("Key = %q, want %q", got, "user-1")
	}
}

func TestBuildEmptyKey(t *testing.T) {
	if _, err := Build("", nil); err == nil {
		t.Fatal("expected error for empty user key")
	}
}
