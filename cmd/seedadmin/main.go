// Command seedadmin registers the first admin account for a building by
// calling the running API's /register endpoint. It is a one-shot client, not
// part of the service itself: run it once after creating a building, then
// log in through the normal flow.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

type registerPayload struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	UserRole   string `json:"user_role"`
	BuildingID uint64 `json:"building_id"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  uint64 `json:"user_id"`
}

func main() {
	var (
		server     = flag.String("server", "http://127.0.0.1:8080", "base URL of the visitor entry API")
		username   = flag.String("username", "", "username for the new account")
		password   = flag.String("password", "", "password for the new account")
		role       = flag.String("role", "admin", "user role: super_admin, admin or guard")
		buildingID = flag.Uint64("building-id", 0, "building_id the account manages")
	)
	flag.Parse()

	if *username == "" || *password == "" || *buildingID == 0 {
		log.Fatal("usage: seedadmin -username <name> -password <pass> -building-id <id> [-role admin] [-server url]")
	}

	body, err := json.Marshal(registerPayload{
		Username:   *username,
		Password:   *password,
		UserRole:   *role,
		BuildingID: *buildingID,
	})
	if err != nil {
		log.Fatalf("encode payload: %v", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Post(*server+"/register", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("could not reach the API at %s: %v", *server, err)
	}
	defer resp.Body.Close()

	var out registerResponse
	_ = json.NewDecoder(resp.Body).Decode(&out)

	switch resp.StatusCode {
	case http.StatusCreated:
		fmt.Printf("registered %q (user_id=%d) for building %d with role %s\n",
			*username, out.UserID, *buildingID, *role)
	case http.StatusConflict:
		log.Fatalf("username %q already exists", *username)
	default:
		log.Fatalf("registration failed: status %d, message %q", resp.StatusCode, out.Message)
	}
}
