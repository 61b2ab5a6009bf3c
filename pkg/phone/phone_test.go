package phone

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "local", in: "08012345678", want: "2348012345678"},
		{name: "international digits", in: "2348012345678", want: "2348012345678"},
		{name: "plus prefix", in: "+2348012345678", want: "2348012345678"},
		{name: "ten digits without zero", in: "8012345678", want: "2348012345678"},
		{name: "formatted local", in: "0801 234-5678", want: "2348012345678"},
		{name: "formatted international", in: "+234 (801) 234 5678", want: "2348012345678"},
		{name: "unrecognised kept as digits", in: "12345", want: "12345"},
		{name: "letters only", in: "call me", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalize_EquivalentRepresentations(t *testing.T) {
	for _, local := range []string{"08012345678", "07098765432", "09011112222", "08112345678"} {
		significant := local[1:]
		want := "234" + significant

		require.Equal(t, want, Normalize(local))
		require.Equal(t, want, Normalize("234"+significant))
		require.Equal(t, want, Normalize("+234"+significant))
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{
		"08012345678",
		"08112345678",
		"07012345678",
		"09112345678",
		"2348012345678",
		"+2348012345678",
	}
	for _, v := range valid {
		require.True(t, IsValid(v), v)
	}

	invalid := []string{
		"",
		"12345",
		"2341234567",
		"0711234567",
		"07212345678",
		"06012345678",
		"+234801234567",
		"080123456789",
		"0801234567a",
		" 08012345678",
	}
	for _, v := range invalid {
		require.False(t, IsValid(v), v)
	}
}

func TestWhatsAppURL(t *testing.T) {
	require.Equal(t, "https://wa.me/2348012345678", WhatsAppURL("08012345678", ""))
	require.Equal(t, "https://wa.me/2348012345678", WhatsAppURL("+2348012345678", ""))
	require.Equal(t,
		"https://wa.me/2348012345678?text=Hi%2C%20I%20need%20a%20plumber%20%26%20fast",
		WhatsAppURL("08012345678", "Hi, I need a plumber & fast"),
	)
	require.Equal(t, "https://wa.me/", WhatsAppURL("", ""))
}

func TestTelAndMailtoURL(t *testing.T) {
	require.Equal(t, "tel:+2348012345678", TelURL("08012345678"))
	require.Equal(t, "", TelURL(""))
	require.Equal(t, "mailto:ada@example.com", MailtoURL(" ada@example.com "))
	require.Equal(t, "", MailtoURL(""))
}
