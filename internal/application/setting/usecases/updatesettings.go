package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/tansyhq/tansy/internal/application/setting/dto"
	"github.com/tansyhq/tansy/internal/domain/setting"
	"github.com/tansyhq/tansy/internal/shared/logger"
)

// SettingChangeNotifier defines the interface for notifying setting changes
type SettingChangeNotifier interface {
	NotifyChange(ctx context.Context, category string, changes map[string]any) error
}

// TransactionRunner executes fn atomically, threading the transaction
// through the context it passes to fn.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UpdateSettingsUseCase handles updating panel settings
type UpdateSettingsUseCase struct {
	settingRepo setting.Repository
	txRunner    TransactionRunner
	notifier    SettingChangeNotifier
	logger      logger.Interface
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase.
// txRunner may be nil, in which case updates are applied without a
// surrounding transaction.
func NewUpdateSettingsUseCase(
	settingRepo setting.Repository,
	txRunner TransactionRunner,
	notifier SettingChangeNotifier,
	logger logger.Interface,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingRepo: settingRepo,
		txRunner:    txRunner,
		notifier:    notifier,
		logger:      logger,
	}
}

// UpdateCategorySettings batch updates settings in a category
func (uc *UpdateSettingsUseCase) UpdateCategorySettings(
	ctx context.Context,
	category string,
	request dto.UpdateCategorySettingsRequest,
) error {
	if len(request.Settings) == 0 {
		return nil
	}

	changes := make(map[string]any)

	// The whole category update is atomic: one bad key rolls back the rest.
	err := uc.runAtomically(ctx, func(txCtx context.Context) error {
		for key, value := range request.Settings {
			if err := uc.updateSingleSetting(txCtx, category, key, value); err != nil {
				uc.logger.Errorw("failed to update setting",
					"category", category,
					"key", key,
					"error", err,
				)
				return fmt.Errorf("failed to update setting %s.%s: %w", category, key, err)
			}
			changes[key] = value
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Notify subscribers of the changes
	if uc.notifier != nil && len(changes) > 0 {
		if err := uc.notifier.NotifyChange(ctx, category, changes); err != nil {
			uc.logger.Warnw("failed to notify setting changes",
				"category", category,
				"error", err,
			)
			// Don't fail the update if notification fails
		}
	}

	return nil
}

func (uc *UpdateSettingsUseCase) runAtomically(ctx context.Context, fn func(ctx context.Context) error) error {
	if uc.txRunner == nil {
		return fn(ctx)
	}
	return uc.txRunner.RunInTransaction(ctx, fn)
}

// updateSingleSetting updates or creates a single setting
func (uc *UpdateSettingsUseCase) updateSingleSetting(
	ctx context.Context,
	category, key string,
	value any,
) error {
	existingSetting, err := uc.settingRepo.GetByKey(ctx, category, key)
	if err != nil && !errors.Is(err, setting.ErrSettingNotFound) {
		return err
	}

	var s *setting.Setting

	if existingSetting != nil {
		s = existingSetting
	} else {
		valueType := uc.inferValueType(value)
		s, err = setting.NewSetting(category, key, valueType, "")
		if err != nil {
			return err
		}
	}

	if err := uc.setValueByType(s, value); err != nil {
		return err
	}

	return uc.settingRepo.Upsert(ctx, s)
}

// inferValueType infers the value type from the Go value
func (uc *UpdateSettingsUseCase) inferValueType(value any) setting.ValueType {
	switch value.(type) {
	case bool:
		return setting.ValueTypeBool
	case int, int32, int64, float32, float64:
		return setting.ValueTypeInt
	case string:
		return setting.ValueTypeString
	default:
		return setting.ValueTypeJSON
	}
}

// setValueByType sets the value on the setting based on its type
func (uc *UpdateSettingsUseCase) setValueByType(s *setting.Setting, value any) error {
	switch s.ValueType() {
	case setting.ValueTypeBool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool value for key %s", s.Key())
		}
		return s.SetBoolValue(boolVal)

	case setting.ValueTypeInt:
		var intVal int
		switch v := value.(type) {
		case int:
			intVal = v
		case int32:
			intVal = int(v)
		case int64:
			intVal = int(v)
		case float64:
			intVal = int(v)
		case float32:
			intVal = int(v)
		default:
			return fmt.Errorf("expected int value for key %s", s.Key())
		}
		return s.SetIntValue(intVal)

	case setting.ValueTypeString:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string value for key %s", s.Key())
		}
		return s.SetStringValue(strVal)

	case setting.ValueTypeJSON:
		return s.SetJSONValue(value)

	default:
		return fmt.Errorf("unsupported value type: %s", s.ValueType())
	}
}

// UpsertSetting creates or updates a setting directly
func (uc *UpdateSettingsUseCase) UpsertSetting(ctx context.Context, s *setting.Setting) error {
	return uc.settingRepo.Upsert(ctx, s)
}
