package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultServerURL = "http://localhost:3536"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type step int

const (
	stepEnteringName step = iota
	stepEnteringEmail
	stepEnteringPassword
	stepEnteringWeight
	stepRegistering
	stepLoggingIn
	stepSavingConfig
	stepComplete
)

type model struct {
	step         step
	serverURL    string
	name         string
	email        string
	password     string
	weight       float64
	token        string
	currentInput string
	message      string
	quitting     bool
}

type registerSuccessMsg struct{}
type loginSuccessMsg struct{ token string }
type configSavedMsg struct{ path string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel(serverURL string) model {
	return model{
		step:      stepEnteringName,
		serverURL: serverURL,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func registerAccount(serverURL, name, email, password string, weight float64) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]interface{}{
			"name":     name,
			"email":    email,
			"password": password,
			"weight":   weight,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/api/v1/auth/register", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server at %s: %w", serverURL, err)}
		}
		defer resp.Body.Close()

		var result map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected response from server")}
		}

		if resp.StatusCode != http.StatusCreated {
			msg, _ := result["message"].(string)
			if msg == "" {
				msg = "registration failed"
			}
			return errMsg{fmt.Errorf("%s", msg)}
		}

		return registerSuccessMsg{}
	}
}

func loginAccount(serverURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/api/v1/auth/login", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("could not reach server at %s: %w", serverURL, err)}
		}
		defer resp.Body.Close()

		var result map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected response from server")}
		}

		if resp.StatusCode != http.StatusOK {
			msg, _ := result["message"].(string)
			if msg == "" {
				msg = "login failed"
			}
			return errMsg{fmt.Errorf("%s", msg)}
		}

		token, ok := result["token"].(string)
		if !ok || token == "" {
			return errMsg{fmt.Errorf("server did not return a token")}
		}

		return loginSuccessMsg{token: token}
	}
}

func saveConfig(serverURL, token string) tea.Cmd {
	return func() tea.Msg {
		home, err := os.UserHomeDir()
		if err != nil {
			return errMsg{fmt.Errorf("could not resolve home directory: %w", err)}
		}

		path := filepath.Join(home, ".fit-setup.json")
		data, _ := json.MarshalIndent(map[string]string{
			"server_url": serverURL,
			"token":      token,
		}, "", "  ")

		if err := os.WriteFile(path, data, 0600); err != nil {
			return errMsg{fmt.Errorf("could not write %s: %w", path, err)}
		}

		return configSavedMsg{path: path}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			return m.handleEnter()

		case tea.KeyBackspace:
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}
			return m, nil

		case tea.KeyRunes, tea.KeySpace:
			if m.step <= stepEnteringWeight {
				m.currentInput += string(msg.Runes)
			}
			return m, nil
		}

	case registerSuccessMsg:
		m.step = stepLoggingIn
		m.message = ""
		return m, loginAccount(m.serverURL, m.email, m.password)

	case loginSuccessMsg:
		m.token = msg.token
		m.step = stepSavingConfig
		return m, saveConfig(m.serverURL, m.token)

	case configSavedMsg:
		m.step = stepComplete
		m.message = msg.path
		return m, nil

	case errMsg:
		// Fall back to the first input step so the user can retry
		m.message = msg.Error()
		m.step = stepEnteringName
		m.currentInput = ""
		return m, nil
	}

	return m, nil
}

func (m model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.currentInput)

	switch m.step {
	case stepEnteringName:
		if input == "" {
			m.message = "name cannot be empty"
			return m, nil
		}
		m.name = input
		m.currentInput = ""
		m.message = ""
		m.step = stepEnteringEmail

	case stepEnteringEmail:
		if input == "" || !strings.Contains(input, "@") {
			m.message = "enter a valid email address"
			return m, nil
		}
		m.email = strings.ToLower(input)
		m.currentInput = ""
		m.message = ""
		m.step = stepEnteringPassword

	case stepEnteringPassword:
		if len(input) < 6 {
			m.message = "password must be at least 6 characters"
			return m, nil
		}
		m.password = input
		m.currentInput = ""
		m.message = ""
		m.step = stepEnteringWeight

	case stepEnteringWeight:
		weight, err := strconv.ParseFloat(input, 64)
		if err != nil || weight <= 0 {
			m.message = "enter your current weight as a number"
			return m, nil
		}
		m.weight = weight
		m.currentInput = ""
		m.message = ""
		m.step = stepRegistering
		return m, registerAccount(m.serverURL, m.name, m.email, m.password, m.weight)

	case stepComplete:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Fitness Tracker Setup"))
	b.WriteString("\n\n")

	if m.message != "" && m.step != stepComplete {
		b.WriteString(errorStyle.Render(m.message))
		b.WriteString("\n\n")
	}

	switch m.step {
	case stepEnteringName:
		b.WriteString(promptStyle.Render("Your name: "))
		b.WriteString(inputStyle.Render(m.currentInput + "_"))

	case stepEnteringEmail:
		b.WriteString(promptStyle.Render("Email: "))
		b.WriteString(inputStyle.Render(m.currentInput + "_"))

	case stepEnteringPassword:
		b.WriteString(promptStyle.Render("Password: "))
		b.WriteString(inputStyle.Render(strings.Repeat("*", len(m.currentInput)) + "_"))

	case stepEnteringWeight:
		b.WriteString(promptStyle.Render("Current weight: "))
		b.WriteString(inputStyle.Render(m.currentInput + "_"))

	case stepRegistering:
		b.WriteString("Creating your account...")

	case stepLoggingIn:
		b.WriteString("Logging in...")

	case stepSavingConfig:
		b.WriteString("Saving credentials...")

	case stepComplete:
		b.WriteString(successStyle.Render("All set!"))
		b.WriteString("\n\nToken saved to " + m.message)
		b.WriteString("\n\nPress enter to exit.")
	}

	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("esc to quit"))
	b.WriteString("\n")

	return b.String()
}

func main() {
	serverURL := defaultServerURL
	if v := os.Getenv("FITNESS_SERVER_URL"); v != "" {
		serverURL = v
	}

	p := tea.NewProgram(initialModel(serverURL))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
