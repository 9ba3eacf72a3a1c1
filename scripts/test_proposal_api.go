package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{} // No timeout: model calls can be slow
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func decode(body []byte) map[string]interface{} {
	var out map[string]interface{}
	json.Unmarshal(body, &out)
	return out
}

// conversation pulls the data object out of a response envelope.
func conversation(body []byte) map[string]interface{} {
	env := decode(body)
	data, _ := env["data"].(map[string]interface{})
	return data
}

func main() {
	color.Cyan("🚀 Starting Proposal API Test\n")

	// 1. Create a session
	color.Yellow("\n1. Create Session")
	resp, body, err := sendRequest("POST", "/proposal/v1/session", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	sessionData := conversation(body)
	prettyPrint(sessionData)
	sessionID, _ := sessionData["id"].(string)
	if sessionID == "" {
		color.Red("No session id in response")
		os.Exit(1)
	}

	// 2. Generate a proposal from lead requirements
	color.Yellow("\n2. Generate Proposal (tax-related lead)")
	genReq := map[string]interface{}{
		"requirements": "We are a consulting firm and need help with tax filing for the last two years.",
	}
	resp, body, err = sendRequest("POST", "/proposal/v1/session/"+sessionID+"/generate", genReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	conv := conversation(body)
	prettyPrint(conv)

	// 3. Answer follow-up questions until no more are pending
	for i := 1; ; i++ {
		pending, _ := conv["pending_question"].(string)
		if pending == "" {
			break
		}
		color.Yellow("\n3.%d Answer: %q", i, pending)
		ansReq := map[string]interface{}{"answer": fmt.Sprintf("test answer %d", i)}
		resp, body, err = sendRequest("POST", "/proposal/v1/session/"+sessionID+"/answer", ansReq)
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		color.Green("Status: %s", resp.Status)
		conv = conversation(body)
		prettyPrint(conv)
	}

	// 4. Fetch review details if the conversation reached review
	if phase, _ := conv["phase"].(string); phase == "REVIEW" {
		color.Yellow("\n4. Get Review Details")
		resp, body, err = sendRequest("GET", "/proposal/v1/session/"+sessionID+"/review", nil)
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		color.Green("Status: %s", resp.Status)
		review := decode(body)
		prettyPrint(review)

		// 5. Confirm the details as-is
		color.Yellow("\n5. Confirm Details")
		details, _ := review["data"].(map[string]interface{})
		confirmReq := map[string]interface{}{"details": details}
		resp, body, err = sendRequest("POST", "/proposal/v1/session/"+sessionID+"/confirm", confirmReq)
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		color.Green("Status: %s", resp.Status)
		prettyPrint(decode(body))
	}

	// 6. Fetch the full conversation state
	color.Yellow("\n6. Get Conversation")
	resp, body, err = sendRequest("GET", "/proposal/v1/session/"+sessionID, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decode(body))

	// 7. Delete the session
	color.Yellow("\n7. Delete Session")
	resp, _, err = sendRequest("DELETE", "/proposal/v1/session/"+sessionID, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	color.Cyan("\n✅ Proposal API test finished")
}
