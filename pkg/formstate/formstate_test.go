package formstate_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-currencyinput/pkg/field"
	"github.com/goliatone/go-currencyinput/pkg/formstate"
)

func amountField(t *testing.T, fns ...field.OptionFn) field.Field {
	t.Helper()
	f, err := field.New("amount", fns...)
	if err != nil {
		t.Fatalf("field.New error: %v", err)
	}
	return f
}

func TestRegister(t *testing.T) {
	t.Run("seeds initial value", func(t *testing.T) {
		store := formstate.NewStore()
		if err := store.Register(amountField(t, field.WithInitialValue(12.5))); err != nil {
			t.Fatalf("Register error: %v", err)
		}
		v, ok := store.Value("amount")
		if !ok || v != 12.5 {
			t.Fatalf("Value = %v, %v; want 12.5, true", v, ok)
		}
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		store := formstate.NewStore()
		store.MustRegister(amountField(t))
		err := store.Register(amountField(t))
		if !errors.Is(err, formstate.ErrDuplicateField) {
			t.Fatalf("Register error = %v, want ErrDuplicateField", err)
		}
	})

	t.Run("empty id rejected", func(t *testing.T) {
		store := formstate.NewStore()
		if err := store.Register(field.Field{}); !errors.Is(err, field.ErrIDRequired) {
			t.Fatalf("Register error = %v, want ErrIDRequired", err)
		}
	})
}

func TestValueLifecycle(t *testing.T) {
	store := formstate.NewStore()
	store.MustRegister(amountField(t, field.WithLocale("en"), field.WithRules(field.Rules{Min: field.Min(10)})))

	t.Run("unknown field reads zero", func(t *testing.T) {
		if _, ok := store.Value("other"); ok {
			t.Fatal("Value(\"other\") reported ok")
		}
		if st := store.FieldState("other"); st != (formstate.FieldState{}) {
			t.Fatalf("FieldState(\"other\") = %+v, want zero", st)
		}
	})

	t.Run("set value revalidates", func(t *testing.T) {
		store.SetValue("amount", 5)
		st := store.FieldState("amount")
		if !st.Invalid {
			t.Fatalf("state = %+v, want invalid", st)
		}
		if want := "must be at least 10.00"; st.Message != want {
			t.Fatalf("Message = %q, want %q", st.Message, want)
		}
		if st.Touched {
			t.Fatal("value write should not mark the field touched")
		}
	})

	t.Run("valid value clears the message", func(t *testing.T) {
		store.SetValue("amount", 25)
		st := store.FieldState("amount")
		if st.Invalid || st.Message != "" {
			t.Fatalf("state = %+v, want valid", st)
		}
	})

	t.Run("blur marks touched", func(t *testing.T) {
		store.SetTouched("amount")
		if st := store.FieldState("amount"); !st.Touched {
			t.Fatalf("state = %+v, want touched", st)
		}
	})

	t.Run("writes to unknown fields are dropped", func(t *testing.T) {
		store.SetValue("other", 1)
		store.SetTouched("other")
		if _, ok := store.Value("other"); ok {
			t.Fatal("unknown field materialized")
		}
	})
}

func TestDisplay(t *testing.T) {
	store := formstate.NewStore()
	store.MustRegister(amountField(t, field.WithLocale("en"), field.WithInitialValue(1000.5)))

	if got, want := store.Display("amount"), "1,000.50"; got != want {
		t.Fatalf("Display = %q, want %q", got, want)
	}
	if got := store.Display("other"); got != "" {
		t.Fatalf("Display(\"other\") = %q, want empty", got)
	}
}

func TestSubmit(t *testing.T) {
	store := formstate.NewStore()
	store.MustRegister(field.MustNew("price", field.WithLocale("en"), field.WithRules(field.Rules{Required: true})))
	store.MustRegister(field.MustNew("tip", field.WithLocale("en"), field.WithRules(field.Rules{Max: field.Max(100)})))

	violations := store.Submit()
	want := map[string]string{"price": "value is required"}
	if diff := cmp.Diff(want, violations); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
	if st := store.FieldState("tip"); !st.Touched {
		t.Fatal("submit should touch every field")
	}

	store.SetValue("price", 42)
	if violations := store.Submit(); len(violations) != 0 {
		t.Fatalf("violations after fix = %v, want none", violations)
	}
}

func TestValuesAndFields(t *testing.T) {
	store := formstate.NewStore()
	store.MustRegister(field.MustNew("price", field.WithInitialValue(3)))
	store.MustRegister(field.MustNew("tip", field.WithInitialValue(1)))

	if diff := cmp.Diff(map[string]float64{"price": 3, "tip": 1}, store.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	var ids []string
	for _, f := range store.Fields() {
		ids = append(ids, f.ID)
	}
	if diff := cmp.Diff([]string{"price", "tip"}, ids); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
}

func TestReset(t *testing.T) {
	store := formstate.NewStore()
	store.MustRegister(amountField(t, field.WithInitialValue(7)))

	store.SetValue("amount", 99)
	store.SetTouched("amount")
	store.Reset()

	if v, _ := store.Value("amount"); v != 7 {
		t.Fatalf("Value after reset = %v, want 7", v)
	}
	if st := store.FieldState("amount"); st.Touched {
		t.Fatalf("state after reset = %+v, want untouched", st)
	}
}
