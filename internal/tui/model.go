// Package tui is the terminal client for the Golden Flower server. It is
// presentation only: every rule lives server-side and the model just renders
// snapshots and relays commands.
package tui

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/hayeslin-project/goldenflower/internal/client"
	"github.com/hayeslin-project/goldenflower/internal/deck"
	"github.com/hayeslin-project/goldenflower/internal/room"
	"github.com/hayeslin-project/goldenflower/internal/server"
)

// serverMsg wraps an inbound server message for the bubbletea update loop.
type serverMsg struct {
	msg *server.Message
}

// Model is the bubbletea model for the game client.
type Model struct {
	cli    *client.Client
	logger *log.Logger

	eventLog viewport.Model
	input    textinput.Model

	playerID   string
	playerName string
	rooms      []room.Info
	inRoom     bool
	roomState  room.State
	myCards    []deck.Card
	cardsSeen  bool

	lines    []string
	width    int
	height   int
	sized    bool
	quitting bool
}

// NewModel creates the TUI model. Server events must be fed in through
// serverMsg values, normally via Run.
func NewModel(cli *client.Client, playerName string, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)

	ti := textinput.New()
	ti.Placeholder = "create | join <room> | ready | start | see | call | raise 20 | compare | fold"
	ti.Focus()
	ti.CharLimit = 100
	ti.Prompt = "> "
	ti.PromptStyle = turnStyle

	return &Model{
		cli:        cli,
		logger:     logger.WithPrefix("tui"),
		eventLog:   vp,
		input:      ti,
		playerName: playerName,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.eventLog.Width = msg.Width - 4
		m.eventLog.Height = max(5, msg.Height-14)
		m.input.Width = msg.Width - 6
		m.sized = true
		m.refreshLog()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line != "" {
				return m, m.handleCommand(line)
			}
			return m, nil
		}

	case serverMsg:
		m.handleServerMessage(msg.msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.eventLog, cmd = m.eventLog.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleCommand parses one input line and sends the matching command.
func (m *Model) handleCommand(line string) tea.Cmd {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "create":
		err = m.cli.CreateRoom(strings.Join(args, " "))
	case "join":
		if len(args) != 1 {
			m.appendLine(errorStyle.Render("usage: join <roomId>"))
			return nil
		}
		err = m.cli.JoinRoom(args[0])
	case "leave":
		err = m.cli.LeaveRoom()
	case "ready":
		err = m.cli.SetReady(true)
	case "unready":
		err = m.cli.SetReady(false)
	case "start":
		err = m.cli.StartGame()
	case "see", "fold", "call", "compare":
		err = m.cli.Act(cmd, 0)
	case "raise":
		amount := 0
		if len(args) == 1 {
			if amount, err = strconv.Atoi(args[0]); err != nil {
				m.appendLine(errorStyle.Render("usage: raise [amount]"))
				return nil
			}
		}
		err = m.cli.Act("raise", amount)
	case "reset":
		err = m.cli.ResetGame()
	case "rooms":
		err = m.cli.ListRooms()
	case "quit", "exit":
		m.quitting = true
		_ = m.cli.Close()
		return tea.Quit
	default:
		m.appendLine(errorStyle.Render("unknown command: " + cmd))
		return nil
	}

	if err != nil {
		m.appendLine(errorStyle.Render(err.Error()))
	}
	return nil
}

// handleServerMessage folds one server event into the model.
func (m *Model) handleServerMessage(msg *server.Message) {
	switch msg.Type {
	case server.MessageTypeJoined:
		var d server.JoinedData
		if decode(msg, &d) {
			m.playerID = d.PlayerID
			m.playerName = d.PlayerName
			m.appendLine(fmt.Sprintf("connected as %s", d.PlayerName))
		}

	case server.MessageTypeRoomList:
		var d server.RoomListData
		if decode(msg, &d) {
			m.rooms = d.Rooms
		}

	case server.MessageTypeRoomCreated:
		var d server.RoomCreatedData
		if decode(msg, &d) {
			m.enterRoom(d.Room)
			m.appendLine("room created: " + d.Room.Name)
		}

	case server.MessageTypeRoomJoined:
		var d server.RoomJoinedData
		if decode(msg, &d) {
			m.enterRoom(d.Room)
			m.appendLine("joined room: " + d.Room.Name)
		}

	case server.MessageTypePlayerJoined:
		var d server.PlayerJoinedData
		if decode(msg, &d) {
			m.roomState = d.Room
			m.appendLine(d.Player.Name + " joined")
		}

	case server.MessageTypePlayerLeft:
		var d server.PlayerLeftData
		if decode(msg, &d) {
			m.roomState = d.Room
			m.appendLine("a player left")
		}

	case server.MessageTypePlayerReady:
		var d server.PlayerReadyData
		if decode(msg, &d) {
			m.roomState = d.Room
		}

	case server.MessageTypeRoomLeft:
		m.inRoom = false
		m.myCards = nil
		m.cardsSeen = false
		m.appendLine("left room")

	case server.MessageTypeGameStarted:
		var d server.GameStartedData
		if decode(msg, &d) {
			m.roomState = d.Room
			m.myCards = d.Cards
			m.cardsSeen = false
			m.appendLine(potStyle.Render(fmt.Sprintf("game started, pot %d", d.Pot)))
		}

	case server.MessageTypeActionResult:
		var d server.ActionResultData
		if decode(msg, &d) {
			m.roomState = d.Room
			if d.PlayerID == m.playerID && d.Action == "see" {
				m.cardsSeen = true
			}
			m.appendLine(m.nameOf(d.PlayerID) + " " + d.Message)
		}

	case server.MessageTypeGameOver:
		var d server.GameOverData
		if decode(msg, &d) {
			m.roomState = d.Room
			m.appendLine(potStyle.Render(fmt.Sprintf("%s wins the pot of %d", d.WinnerName, d.Pot)))
			for _, res := range d.Results {
				m.appendLine(fmt.Sprintf("  %s: %s (%s)", res.Name, renderCards(res.Cards), res.RankName))
			}
		}

	case server.MessageTypeGameReset:
		var d server.GameResetData
		if decode(msg, &d) {
			m.roomState = d.Room
			m.myCards = nil
			m.cardsSeen = false
			m.appendLine("table reset, ready up for the next round")
		}

	case server.MessageTypeError:
		var d server.ErrorData
		if decode(msg, &d) {
			m.appendLine(errorStyle.Render(d.Message))
		}
	}
}

func (m *Model) enterRoom(st room.State) {
	m.inRoom = true
	m.roomState = st
	m.myCards = nil
	m.cardsSeen = false
}

func (m *Model) nameOf(playerID string) string {
	for _, p := range m.roomState.Players {
		if p.ID == playerID {
			return p.Name
		}
	}
	return "someone"
}

func (m *Model) appendLine(line string) {
	m.lines = append(m.lines, line)
	if len(m.lines) > 200 {
		m.lines = m.lines[len(m.lines)-200:]
	}
	m.refreshLog()
}

func (m *Model) refreshLog() {
	m.eventLog.SetContent(strings.Join(m.lines, "\n"))
	m.eventLog.GotoBottom()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return "bye\n"
	}
	if !m.sized {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Golden Flower"))
	b.WriteString("\n")

	if m.inRoom {
		b.WriteString(m.roomView())
	} else {
		b.WriteString(m.lobbyView())
	}

	b.WriteString("\n")
	b.WriteString(m.eventLog.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

func (m *Model) lobbyView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Rooms"))
	b.WriteString("\n")
	if len(m.rooms) == 0 {
		b.WriteString(helpStyle.Render("no rooms yet; type create to open one"))
		b.WriteString("\n")
		return b.String()
	}
	for _, r := range m.rooms {
		b.WriteString(fmt.Sprintf("  %-10s %-20s %d/%d  %s\n",
			r.ID, r.Name, r.PlayerCount, r.MaxPlayers, r.Status))
	}
	return b.String()
}

func (m *Model) roomView() string {
	st := m.roomState
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%s)", st.Name, st.Status)))
	b.WriteString("  ")
	b.WriteString(potStyle.Render(fmt.Sprintf("pot %d", st.Pot)))
	b.WriteString(fmt.Sprintf("  bet %d\n", st.CurrentBet))

	for _, p := range st.Players {
		line := fmt.Sprintf("  %-16s %5d chips  bet %4d", p.Name, p.Chips, p.Bet)
		switch {
		case p.Folded:
			line = foldedStyle.Render(line + "  folded")
		case st.CurrentTurn == p.ID:
			line = turnStyle.Render(line + "  ← to act")
		case st.Status == "waiting" && p.Ready:
			line += "  ready"
		}
		if p.ID == st.CreatorID {
			line += " *"
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.myCards) > 0 {
		b.WriteString("  your hand: ")
		if m.cardsSeen {
			b.WriteString(renderCards(m.myCards))
		} else {
			b.WriteString(helpStyle.Render("[hidden] — type see to look"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderCards renders cards with suit colouring.
func renderCards(cards []deck.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		style := blackCardStyle
		if c.IsRed() {
			style = redCardStyle
		}
		parts = append(parts, style.Render(c.String()))
	}
	return strings.Join(parts, " ")
}

func decode(msg *server.Message, v interface{}) bool {
	return json.Unmarshal(msg.Data, v) == nil
}

// Run wires the client's events into a bubbletea program and blocks until
// the user quits or the connection drops.
func Run(cli *client.Client, playerName string, logger *log.Logger) error {
	m := NewModel(cli, playerName, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())

	forward := func(msg *server.Message) {
		p.Send(serverMsg{msg: msg})
	}
	for _, mt := range []server.MessageType{
		server.MessageTypeJoined,
		server.MessageTypeRoomList,
		server.MessageTypeRoomCreated,
		server.MessageTypeRoomJoined,
		server.MessageTypePlayerJoined,
		server.MessageTypePlayerLeft,
		server.MessageTypePlayerReady,
		server.MessageTypeRoomLeft,
		server.MessageTypeGameStarted,
		server.MessageTypeActionResult,
		server.MessageTypeGameOver,
		server.MessageTypeGameReset,
		server.MessageTypeError,
	} {
		cli.On(mt, forward)
	}

	if err := cli.Join(playerName); err != nil {
		return err
	}

	_, err := p.Run()
	return err
}
