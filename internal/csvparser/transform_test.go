package csvparser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/recordkeeper/internal/config"
	"github.com/ginjaninja78/recordkeeper/internal/finance"
)

func TestApplyAction(t *testing.T) {
	t.Parallel()

	row := map[string]string{"category": "Rent"}

	tests := []struct {
		name   string
		value  string
		action config.TransformAction
		want   string
	}{
		{"trim", "  a b ", config.TransformAction{Type: "trim"}, "a b"},
		{"uppercase", "abc", config.TransformAction{Type: "uppercase"}, "ABC"},
		{"lowercase", "ABC", config.TransformAction{Type: "lowercase"}, "abc"},
		{"title case", "eATING   out", config.TransformAction{Type: "title_case"}, "Eating Out"},
		{"normalize whitespace", " a \t b  ", config.TransformAction{Type: "normalize_whitespace"}, "a b"},
		{"prepend", "42", config.TransformAction{Type: "prepend_string", Value: "TX-"}, "TX-42"},
		{"append", "42", config.TransformAction{Type: "append_string", Value: ".00"}, "42.00"},
		{"replace", "1,500.00", config.TransformAction{Type: "replace", Find: ",", Value: ""}, "1500.00"},
		{"extract digits", "#12-a3", config.TransformAction{Type: "extract_digits"}, "123"},
		{"default used", " ", config.TransformAction{Type: "if_empty_use_default", Value: "Misc"}, "Misc"},
		{"default unused", "Food", config.TransformAction{Type: "if_empty_use_default", Value: "Misc"}, "Food"},
		{"other field", "", config.TransformAction{Type: "if_empty_use_field", Value: "Category"}, "Rent"},
		{"lookup hit", "momo", config.TransformAction{Type: "lookup", LookupTable: map[string]string{"momo": "mobile_money"}}, "mobile_money"},
		{"lookup miss", "bank", config.TransformAction{Type: "lookup", LookupTable: map[string]string{"momo": "mobile_money"}}, "bank"},
		{"lookup default", "cash", config.TransformAction{Type: "lookup_with_default", Value: "bank_transfer"}, "bank_transfer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ApplyAction(tt.value, tt.action, row)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyAction_Errors(t *testing.T) {
	t.Parallel()

	_, err := ApplyAction("x", config.TransformAction{Type: "reverse"}, nil)
	require.ErrorContains(t, err, `unknown transformation type "reverse"`)

	_, err = ApplyAction("x", config.TransformAction{Type: "replace"}, nil)
	require.ErrorContains(t, err, "find string")
}

func TestToTransactions_AppliesTransforms(t *testing.T) {
	t.Parallel()

	settings := config.CSVSettings{
		Delimiter:  ",",
		DateLayout: "2006-01-02",
		Transforms: []config.ColumnTransform{
			{Column: "Channel", Actions: []config.TransformAction{
				{Type: "lowercase"},
				{Type: "lookup", LookupTable: map[string]string{"momo": "mobile_money"}},
			}},
			{Column: "amount", Actions: []config.TransformAction{{Type: "replace", Find: ",", Value: ""}}},
			{Column: "category", Actions: []config.TransformAction{{Type: "if_empty_use_default", Value: "Misc"}}},
		},
	}

	data, err := ParseReader(strings.NewReader("id;amount;category;channel\n7;\"1,250.50\";;MOMO\n"),
		config.CSVSettings{Delimiter: ";"})
	require.NoError(t, err)

	got, err := ToTransactions(data, settings, time.Now())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1250.5", got[0].Transaction.Amount.String())
	assert.Equal(t, "Misc", got[0].Transaction.Category)
	assert.Equal(t, finance.ChannelMobileMoney, got[0].Channel)
}

func TestToTransactions_TransformError(t *testing.T) {
	t.Parallel()

	data, err := ParseReader(strings.NewReader("id,amount,category\n1,10,Food\n"), config.CSVSettings{})
	require.NoError(t, err)

	_, err = ToTransactions(data, config.CSVSettings{
		DateLayout: "2006-01-02",
		Transforms: []config.ColumnTransform{{Column: "category", Actions: []config.TransformAction{{Type: "shout"}}}},
	}, time.Now())
	require.ErrorContains(t, err, "row 2: column category")
}
