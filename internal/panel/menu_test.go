package panel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PanelKit_Go/internal/domain"
	"github.com/osse101/PanelKit_Go/internal/render"
)

func TestNewMenu(t *testing.T) {
	_, err := NewMenu("bad", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	m, err := NewMenu("Settings", 27)
	require.NoError(t, err)
	assert.Equal(t, "Settings", m.Name())
	assert.Equal(t, 27, m.Size())
}

func TestMenu_SetItem(t *testing.T) {
	m, err := NewMenu("Settings", 9)
	require.NoError(t, err)
	item := swordBuilder().Build(WithMarkers(render.NewNoop()))

	require.NoError(t, m.SetItem(4, item))
	got, ok := m.Item(4)
	require.True(t, ok)
	assert.Same(t, item, got)

	assert.ErrorIs(t, m.SetItem(9, item), domain.ErrSlotOutOfRange)
	assert.ErrorIs(t, m.SetItem(-1, item), domain.ErrSlotOutOfRange)

	require.NoError(t, m.SetItem(4, nil))
	_, ok = m.Item(4)
	assert.False(t, ok)
}

func TestMenu_Click(t *testing.T) {
	ctx := context.Background()
	user := domain.User{ID: "user-alice", Username: "alice"}

	m, err := NewMenu("Settings", 9)
	require.NoError(t, err)

	var (
		gotPanel Panel
		gotUser  domain.User
		gotType  domain.ClickType
		gotSlot  int
	)
	handler := ClickHandlerFunc(func(p Panel, u domain.User, ct domain.ClickType, slot int) bool {
		gotPanel, gotUser, gotType, gotSlot = p, u, ct, slot
		return ct == domain.ClickLeft
	})

	require.NoError(t, m.SetItem(2, swordBuilder().WithClickHandler(handler).Build(WithMarkers(render.NewNoop()))))
	require.NoError(t, m.SetItem(3, swordBuilder().Build(WithMarkers(render.NewNoop()))))

	t.Run("dispatches to handler", func(t *testing.T) {
		cancel, err := m.Click(ctx, user, domain.ClickLeft, 2)

		require.NoError(t, err)
		assert.True(t, cancel)
		assert.Same(t, m, gotPanel)
		assert.Equal(t, user, gotUser)
		assert.Equal(t, domain.ClickLeft, gotType)
		assert.Equal(t, 2, gotSlot)
	})

	t.Run("returns handler decision", func(t *testing.T) {
		cancel, err := m.Click(ctx, user, domain.ClickRight, 2)
		require.NoError(t, err)
		assert.False(t, cancel)
	})

	t.Run("item without handler is inert", func(t *testing.T) {
		cancel, err := m.Click(ctx, user, domain.ClickLeft, 3)
		require.NoError(t, err)
		assert.False(t, cancel)
	})

	t.Run("empty slot is inert", func(t *testing.T) {
		cancel, err := m.Click(ctx, user, domain.ClickLeft, 0)
		require.NoError(t, err)
		assert.False(t, cancel)
	})

	t.Run("out of range slot errors", func(t *testing.T) {
		_, err := m.Click(ctx, user, domain.ClickLeft, 42)
		assert.ErrorIs(t, err, domain.ErrSlotOutOfRange)
	})

	t.Run("handler can mutate the clicked item", func(t *testing.T) {
		toggle := swordBuilder().Build(WithMarkers(render.NewLive()))
		toggle.SetClickHandler(ClickHandlerFunc(func(p Panel, _ domain.User, _ domain.ClickType, slot int) bool {
			it, ok := p.Item(slot)
			if ok {
				it.SetGlow(!it.Glow())
			}
			return true
		}))
		require.NoError(t, m.SetItem(5, toggle))

		_, err := m.Click(ctx, user, domain.ClickLeft, 5)
		require.NoError(t, err)
		assert.True(t, toggle.Glow())

		meta, ok := toggle.Meta()
		require.True(t, ok)
		assert.True(t, meta.HasEnchant(domain.EnchantLure))
	})
}
