package driver

import "testing"

func TestLanguageOutString(t *testing.T) {
	if ES5.String() != "ES5" {
		t.Errorf("ES5.String() = %q, want \"ES5\"", ES5.String())
	}
	if ES3.String() != "ES3" {
		t.Errorf("ES3.String() = %q, want \"ES3\"", ES3.String())
	}
}

func TestContextRuntimeAndCodeChangedFlags(t *testing.T) {
	ctx := NewContext(ES5)
	if ctx.NeedsRuntime() {
		t.Error("NeedsRuntime() = true before any rewrite ran")
	}
	ctx.RequireRuntime()
	if !ctx.NeedsRuntime() {
		t.Error("NeedsRuntime() = false after RequireRuntime()")
	}

	if ctx.CodeChanged() {
		t.Error("CodeChanged() = true before any rewrite ran")
	}
	ctx.ReportCodeChange()
	if !ctx.CodeChanged() {
		t.Error("CodeChanged() = false after ReportCodeChange()")
	}
	ctx.ResetCodeChanged()
	if ctx.CodeChanged() {
		t.Error("CodeChanged() = true after ResetCodeChanged()")
	}
	if !ctx.NeedsRuntime() {
		t.Error("ResetCodeChanged() should not clear needsRuntime")
	}
}

func TestContextStatsAccumulate(t *testing.T) {
	ctx := NewContext(ES5)
	ctx.IncClassesLowered()
	ctx.IncClassesLowered()
	ctx.IncForOfLowered()
	ctx.IncRestParamsLowered()
	ctx.IncSpreadSitesLowered()
	ctx.IncComputedPropsLowered()
	ctx.IncShorthandsLowered()

	got := ctx.Stats()
	want := Stats{
		ClassesLowered:       2,
		ForOfLowered:         1,
		RestParamsLowered:    1,
		SpreadSitesLowered:   1,
		ComputedPropsLowered: 1,
		ShorthandsLowered:    1,
	}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestAssertfPanicsOnFalse(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Assertf(false, ...) did not panic")
		}
	}()
	Assertf(false, "invariant violated: %d", 42)
}

func TestAssertfNoPanicOnTrue(t *testing.T) {
	Assertf(true, "should never fire")
}
