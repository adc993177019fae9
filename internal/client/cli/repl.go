package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

type command struct {
	name string
	help string
	run  func(a *App, ctx context.Context) error
}

func goTo(s Screen) func(a *App, ctx context.Context) error {
	return func(a *App, _ context.Context) error {
		a.session.Screen = s
		a.showScreen()
		return nil
	}
}

// commandsFor lists the commands screen s accepts besides help and exit.
func commandsFor(s Screen) []command {
	switch s {
	case ScreenHome:
		return []command{
			{"login", "go to the login page", goTo(ScreenLogin)},
			{"register", "go to the register page", goTo(ScreenRegister)},
		}
	case ScreenLogin:
		return []command{
			{"login", "log in with username and password", (*App).login},
			{"register", "register instead", goTo(ScreenRegister)},
			{"back", "return home", goTo(ScreenHome)},
		}
	case ScreenRegister:
		return []command{
			{"register", "create an account", (*App).register},
			{"suggest", "suggest a strong password", (*App).suggest},
			{"login", "already registered? log in here", goTo(ScreenLogin)},
			{"back", "return home", goTo(ScreenHome)},
		}
	case ScreenDashboard:
		return []command{
			{"update", "change username and/or password", (*App).update},
			{"suggest", "suggest a strong password", (*App).suggest},
			{"whoami", "show the current user", (*App).whoami},
			{"logout", "log out", (*App).logout},
		}
	}
	return nil
}

var screenTitles = map[Screen]string{
	ScreenHome:      "Welcome! Please choose an option:",
	ScreenLogin:     "Login Page",
	ScreenRegister:  "Register Page",
	ScreenDashboard: "User Dashboard",
}

func findCommand(s Screen, name string) (command, bool) {
	for _, c := range commandsFor(s) {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func (a *App) getStatus() string {
	s := string(a.session.Screen)
	if a.session.CurrentUser != "" {
		s = a.session.CurrentUser + " " + s
	}
	if m := a.Mode(); m != ModeLocal {
		s = s + " " + string(m)
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) showScreen() {
	a.println()
	a.println(titleStyle.Render(screenTitles[a.session.Screen]))
	if a.session.Screen == ScreenDashboard {
		a.println(fmt.Sprintf("Welcome, %s! You can change your username or password below.", a.session.CurrentUser))
	}
	a.printHelp()
}

func (a *App) printHelp() {
	cmds := commandsFor(a.session.Screen)
	names := make([]string, 0, len(cmds)+2)
	for _, c := range cmds {
		names = append(names, c.name)
	}
	names = append(names, "help", "exit")
	a.println(mutedStyle.Render("Available commands: " + strings.Join(names, ", ")))
}

func (a *App) printCommandHelp() {
	for _, c := range commandsFor(a.session.Screen) {
		a.println(fmt.Sprintf("  %-10s %s", c.name, c.help))
	}
	a.println(fmt.Sprintf("  %-10s %s", "help", "show this list"))
	a.println(fmt.Sprintf("  %-10s %s", "exit", "leave the program"))
}

// repl reads one command per line and dispatches it on the current screen.
// Errors from commands are reported and the loop continues; it ends on
// exit/quit or at end of input.
func (a *App) repl(ctx context.Context) error {
	for {
		fmt.Fprintf(a.out, "securelogin %s> ", a.getStatus())

		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			if errors.Is(err, io.EOF) {
				a.println()
				return nil
			}
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			a.printCommandHelp()
			continue
		case "exit", "quit":
			a.println("Bye!")
			return nil
		}

		c, ok := findCommand(a.session.Screen, cmd)
		if !ok {
			a.println("Unknown command:", cmd)
			continue
		}
		if err := c.run(a, ctx); err != nil {
			a.report(ctx, err)
		}
	}
}
