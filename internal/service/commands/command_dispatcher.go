package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/avinventory/internal/domain/models"
	"github.com/mamadbah2/avinventory/internal/i18n"
	"github.com/mamadbah2/avinventory/internal/inventory"
)

// ErrUnsupportedCommand indicates the menu selection has no handler.
var ErrUnsupportedCommand = errors.New("unsupported command")

// Prompter is the console surface required by the dispatcher.
type Prompter interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadString(prompt string) (string, error)
	ReadInt(prompt string, min, max int) (int, error)
	ReadFloat(prompt string, min, max float64) (float64, error)
	ReadBool(prompt string) (bool, error)
}

// Dispatcher runs the menu loop over an inventory.
type Dispatcher interface {
	Run(ctx context.Context) error
	HandleCommand(ctx context.Context, cmd models.CommandType) (done bool, err error)
}

// Service implements the Dispatcher interface. It owns the inventory for the
// lifetime of the session.
type Service struct {
	inventory *inventory.Inventory
	prompter  Prompter
	catalog   *i18n.Catalog
	logger    *zap.Logger
	sessionID string
}

var _ Dispatcher = (*Service)(nil)

// NewService constructs a menu dispatcher.
func NewService(inv *inventory.Inventory, prompter Prompter, catalog *i18n.Catalog, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if catalog == nil {
		catalog = i18n.Default()
	}
	sessionID := uuid.NewString()
	return &Service{
		inventory: inv,
		prompter:  prompter,
		catalog:   catalog,
		logger:    logger.With(zap.String("session_id", sessionID)),
		sessionID: sessionID,
	}
}

// SessionID identifies this run in the logs.
func (s *Service) SessionID() string {
	return s.sessionID
}

// Run shows the menu until the user exits, the input ends or ctx is
// cancelled. The inventory is cleared before Run returns.
func (s *Service) Run(ctx context.Context) error {
	s.logger.Info("session started")
	defer s.teardown()

	for {
		if err := ctx.Err(); err != nil {
			s.logger.Info("session cancelled", zap.Error(err))
			return nil
		}

		s.printMenu()
		choice, err := s.prompter.ReadInt(s.catalog.PromptChoice, 1, models.MenuSize)
		if err != nil {
			return s.inputEnded(err)
		}

		done, err := s.HandleCommand(ctx, models.ParseCommand(choice))
		if err != nil {
			return s.inputEnded(err)
		}
		if done {
			return nil
		}
	}
}

// HandleCommand executes one menu action. done reports whether the session
// should end.
func (s *Service) HandleCommand(ctx context.Context, cmd models.CommandType) (bool, error) {
	if err := ctx.Err(); err != nil {
		return true, err
	}
	s.logger.Debug("dispatching command", zap.String("command", string(cmd)))

	switch cmd {
	case models.CommandAdd:
		return false, s.addDevice()
	case models.CommandList:
		s.listDevices()
		return false, nil
	case models.CommandRemove:
		return false, s.removeDevice()
	case models.CommandExit:
		return true, nil
	default:
		return false, ErrUnsupportedCommand
	}
}

func (s *Service) printMenu() {
	s.prompter.Println()
	s.prompter.Println(s.catalog.MenuTitle)
	s.prompter.Println(s.catalog.MenuAdd)
	s.prompter.Println(s.catalog.MenuList)
	s.prompter.Println(s.catalog.MenuRemove)
	s.prompter.Println(s.catalog.MenuExit)
}

func (s *Service) addDevice() error {
	c := s.catalog

	s.prompter.Println()
	s.prompter.Println("1 - " + c.TypeEquipment)
	s.prompter.Println("2 - " + c.TypeTelevision)
	s.prompter.Println("3 - " + c.TypeRadio)
	choice, err := s.prompter.ReadInt(c.PromptKind, 1, 3)
	if err != nil {
		return err
	}
	kind, _ := models.KindFromChoice(choice)

	base, err := s.readEquipmentOptions()
	if err != nil {
		return err
	}

	var device models.Device
	switch kind {
	case models.KindEquipment:
		device = models.NewEquipment(base)
	case models.KindTelevision:
		opts, err := s.readTelevisionOptions(base)
		if err != nil {
			return err
		}
		device = models.NewTelevision(opts)
	case models.KindRadio:
		opts, err := s.readRadioOptions(base)
		if err != nil {
			return err
		}
		device = models.NewRadio(opts)
	}

	if err := s.inventory.Add(device); err != nil {
		return fmt.Errorf("add %s: %w", kind, err)
	}
	s.logger.Info("device added", zap.String("kind", string(kind)), zap.Int("count", s.inventory.Len()))
	s.prompter.Println(c.Added)
	return nil
}

func (s *Service) readEquipmentOptions() (models.EquipmentOptions, error) {
	c := s.catalog
	opts := models.DefaultEquipmentOptions()

	var err error
	if opts.Brand, err = s.prompter.ReadString(c.PromptBrand); err != nil {
		return opts, err
	}
	if opts.Model, err = s.prompter.ReadString(c.PromptModel); err != nil {
		return opts, err
	}
	if opts.Price, err = s.prompter.ReadInt(fmt.Sprintf(c.PromptPrice, models.MinPrice, models.MaxPrice), models.MinPrice, models.MaxPrice); err != nil {
		return opts, err
	}
	if opts.PowerConsumption, err = s.prompter.ReadInt(fmt.Sprintf(c.PromptPower, models.MinPower, models.MaxPower), models.MinPower, models.MaxPower); err != nil {
		return opts, err
	}
	return opts, nil
}

func (s *Service) readTelevisionOptions(base models.EquipmentOptions) (models.TelevisionOptions, error) {
	c := s.catalog
	opts := models.DefaultTelevisionOptions()
	opts.EquipmentOptions = base

	var err error
	if opts.ScreenSize, err = s.prompter.ReadFloat(fmt.Sprintf(c.PromptScreen, models.MinScreenSize, models.MaxScreenSize), models.MinScreenSize, models.MaxScreenSize); err != nil {
		return opts, err
	}
	if opts.Resolution, err = s.prompter.ReadString(c.PromptRes); err != nil {
		return opts, err
	}
	if opts.SmartTV, err = s.prompter.ReadBool(c.PromptSmartTV); err != nil {
		return opts, err
	}
	return opts, nil
}

func (s *Service) readRadioOptions(base models.EquipmentOptions) (models.RadioOptions, error) {
	c := s.catalog
	opts := models.DefaultRadioOptions()
	opts.EquipmentOptions = base

	var err error
	if opts.FrequencyRange, err = s.prompter.ReadString(c.PromptFreq); err != nil {
		return opts, err
	}
	if opts.Bluetooth, err = s.prompter.ReadBool(c.PromptBT); err != nil {
		return opts, err
	}
	if opts.Presets, err = s.prompter.ReadInt(fmt.Sprintf(c.PromptPresets, models.MinPresets, models.MaxPresets), models.MinPresets, models.MaxPresets); err != nil {
		return opts, err
	}
	return opts, nil
}

func (s *Service) listDevices() {
	seq, err := s.inventory.List()
	if err != nil {
		s.prompter.Println(s.catalog.ListEmpty)
		return
	}

	for pos, d := range seq {
		s.prompter.Println()
		s.prompter.Printf(s.catalog.ItemHeader+"\n", pos)
		s.prompter.Printf("%s", d.Render(s.catalog))
	}
}

func (s *Service) removeDevice() error {
	c := s.catalog

	seq, err := s.inventory.List()
	if err != nil {
		s.prompter.Println(c.ListEmpty)
		return nil
	}
	for pos, d := range seq {
		s.prompter.Printf(c.ItemSummary+"\n", pos, d.Summary())
	}

	position, err := s.prompter.ReadInt(c.PromptPosition, 1, s.inventory.Len())
	if err != nil {
		return err
	}

	removed, err := s.inventory.RemoveAt(position)
	if err != nil {
		s.logger.Warn("remove failed", zap.Int("position", position), zap.Error(err))
		s.prompter.Println(c.InvalidPos)
		return nil
	}
	s.logger.Info("device removed", zap.String("kind", string(removed.Kind())), zap.Int("position", position))
	s.prompter.Println(c.Removed)
	return nil
}

// inputEnded treats exhausted input as an exit; any other error is returned.
func (s *Service) inputEnded(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Info("input closed, leaving menu")
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		s.logger.Info("session cancelled", zap.Error(err))
		return nil
	}
	return err
}

func (s *Service) teardown() {
	released := s.inventory.Clear()
	s.prompter.Printf(s.catalog.Released+"\n", released)
	s.prompter.Println(s.catalog.Finished)
	s.logger.Info("session finished", zap.Int("released", released))
}
