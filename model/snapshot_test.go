package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSnapshot_ConversionRequest_JSONShape(t *testing.T) {
	req := ConversionRequest{Input: "NNN", Compliance: ComplianceStrict}

	b, err := json.MarshalIndent(req, "", "  ")
	require.NoError(t, err)

	const want = "{\n" +
		"  \"input\": \"NNN\",\n" +
		"  \"compliance\": \"strict\"\n" +
		"}"
	require.Equal(t, want, string(b))
}

func TestSnapshot_ConversionResponse_JSONShape(t *testing.T) {
	resp := Respond(ConversionRequest{Input: "1"})

	b, err := json.MarshalIndent(resp, "", "  ")
	require.NoError(t, err)

	const want = "{\n" +
		"  \"conversion\": {\n" +
		"    \"input\": \"1\",\n" +
		"    \"form\": \"arabic\",\n" +
		"    \"arabic\": 1,\n" +
		"    \"elbonian\": \"I\",\n" +
		"    \"cid\": \"bafkreifihximzp76hhihdtbrpxpw5f7vy2y4q6xzdemsoh47ufalauemnq\"\n" +
		"  }\n" +
		"}"
	require.Equal(t, want, string(b))
}

func TestSnapshot_ErrorResponse_JSONShape(t *testing.T) {
	resp := Respond(ConversionRequest{Input: "NNNM"})

	b, err := json.MarshalIndent(resp, "", "  ")
	require.NoError(t, err)

	const want = "{\n" +
		"  \"error\": {\n" +
		"    \"code\": \"MALFORMED_NUMBER\",\n" +
		"    \"ruleID\": \"ELB-GRAM-022\",\n" +
		"    \"message\": \"symbol N repeats 3 times alongside M (max 2)\"\n" +
		"  }\n" +
		"}"
	require.Equal(t, want, string(b))
}

func TestSnapshot_Conversion_YAMLShape(t *testing.T) {
	c, err := Convert(ConversionRequest{Input: "NNN"})
	require.NoError(t, err)

	b, err := yaml.Marshal(c)
	require.NoError(t, err)

	want := "input: NNN\n" +
		"form: elbonian\n" +
		"arabic: 9000\n" +
		"elbonian: NNN\n" +
		"cid: " + c.CID + "\n"
	require.Equal(t, want, string(b))
}
