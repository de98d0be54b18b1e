package auth

import "testing"

// TestComputeResponseMatchesReferenceVector pins the exact digest chain
// against the reference vector: any accidental change to concatenation
// order, digest size, or base64 alphabet must fail this test.
func TestComputeResponseMatchesReferenceVector(t *testing.T) {
	const (
		password  = "supersecretpassword"
		salt      = "lM1GncleixOOHFE3Lz3A4dmwR04Z3r3t"
		challenge = "+IxH4CnCiqpX1rM9scsNynZzbOe4KhDeYcTNS3PDaeY="
		want      = "Dmb18GbBEPYqQb2EiLYsb8UMbiOSvT7jJp4NH7aOeqs="
	)
	if got := ComputeResponse(password, salt, challenge); got != want {
		t.Fatalf("got=%q want=%q", got, want)
	}
}

func TestComputeResponseIsSensitiveToEachInput(t *testing.T) {
	base := ComputeResponse("pw", "salt", "chal")
	cases := map[string]string{
		"password changed":  ComputeResponse("other", "salt", "chal"),
		"salt changed":      ComputeResponse("pw", "other", "chal"),
		"challenge changed": ComputeResponse("pw", "salt", "other"),
	}
	for name, got := range cases {
		if got == base {
			t.Fatalf("%s: expected a different digest, got the same one", name)
		}
	}
}
