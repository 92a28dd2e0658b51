package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/game"
)

// Controller turns player input into game commands. It owns the
// front-end-only state: sell mode and which fish's details are open.
// It draws nothing, so it runs without a window.
type Controller struct {
	game   *game.Game
	toasts *Toasts

	sellMode   bool
	details    uint32
	hasDetails bool
}

// NewController creates a controller for g that reports to toasts.
func NewController(g *game.Game, toasts *Toasts) *Controller {
	return &Controller{game: g, toasts: toasts}
}

// SellMode reports whether clicks sell fish.
func (c *Controller) SellMode() bool {
	return c.sellMode
}

// speedOf returns the time scale a speed action selects.
func speedOf(a Action) float64 {
	switch a {
	case ActionSpeed3:
		return 3
	case ActionSpeed6:
		return 6
	}
	return 1
}

// Do runs one action. Rejected commands are shown as toasts and returned.
func (c *Controller) Do(a Action) error {
	g := c.game
	var err error

	switch a {
	case ActionNone:
		return nil
	case ActionBuyGuppy:
		_, err = g.BuyFish(components.SpeciesGuppy)
	case ActionBuyTetra:
		_, err = g.BuyFish(components.SpeciesTetra)
	case ActionBuySeaweed1:
		err = g.BuySeaweed(1)
	case ActionBuySeaweed10:
		err = g.BuySeaweed(10)
	case ActionBuySeaweed100:
		err = g.BuySeaweed(100)
	case ActionToggleSellMode:
		c.sellMode = !c.sellMode
	case ActionTogglePause:
		g.SetPaused(!g.Paused())
	case ActionSpeed1, ActionSpeed3, ActionSpeed6:
		err = g.SetTimeScale(speedOf(a))
	case ActionToggleAutoFeed:
		g.SetAutoFeed(!g.AutoFeed())
	case ActionScatter:
		g.ScatterAll()
	case ActionCloseDetails:
		c.CloseDetails()
	default:
		err = fmt.Errorf("%w: unknown action %d", game.ErrInvalidArgument, a)
	}

	if err != nil {
		c.reject(a.String(), err)
	}
	return err
}

// Click handles a left click at a world position. In sell mode a fish
// under the cursor is sold. Otherwise its details open and, if it is fully
// grown, it is offered for breeding. A click on empty water closes the
// details.
func (c *Controller) Click(wx, wy float64) error {
	g := c.game
	id, ok := g.FishAt(wx, wy)
	if !ok {
		c.CloseDetails()
		return nil
	}

	if c.sellMode {
		price, err := g.SellFish(id)
		if err != nil {
			c.reject("Sell", err)
			return err
		}
		if c.hasDetails && c.details == id {
			c.CloseDetails()
		}
		c.toasts.Push(fmt.Sprintf("Sold fish #%d for %s coins", id, formatCoins(price)), ToastInfo)
		return nil
	}

	c.details = id
	c.hasDetails = true

	fish, _ := g.Fish(id)
	if fish.Stage < g.Config().Growth.MaxStage {
		return nil
	}
	if err := g.SelectForBreeding(id); err != nil {
		c.reject("Breed", err)
		return err
	}
	return nil
}

// Details returns the fish whose details are open. A fish that has since
// died or been sold closes the panel.
func (c *Controller) Details() (game.FishView, bool) {
	if !c.hasDetails {
		return game.FishView{}, false
	}
	fish, ok := c.game.Fish(c.details)
	if !ok {
		c.CloseDetails()
	}
	return fish, ok
}

// CloseDetails closes the fish details.
func (c *Controller) CloseDetails() {
	c.hasDetails = false
	c.details = 0
}

// Poll moves queued game notifications into toasts.
func (c *Controller) Poll() {
	for _, ev := range c.game.Notifications() {
		c.toasts.PushEvent(ev)
	}
}

func (c *Controller) reject(what string, err error) {
	slog.Debug("command_rejected", "command", what, "error", err)
	c.toasts.Push(rejectionText(what, err), ToastBad)
}

// rejectionText turns a command error into a short player-facing line.
func rejectionText(what string, err error) string {
	switch {
	case errors.Is(err, game.ErrInsufficientFunds):
		return what + ": not enough coins"
	case errors.Is(err, game.ErrIneligiblePairing):
		return what + ": " + strings.TrimPrefix(err.Error(), game.ErrIneligiblePairing.Error()+": ")
	case errors.Is(err, game.ErrInvalidReference):
		return what + ": fish is gone"
	}
	return what + ": " + err.Error()
}
