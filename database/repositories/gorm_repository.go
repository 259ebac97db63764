// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"github.com/l3montree-dev/alertflow/common"
	"gorm.io/gorm"
)

// GormRepository holds the operations all model repositories share.
// Writes take an optional transaction, a nil tx uses the repository db.
type GormRepository[ID comparable, T common.Tabler] struct {
	db *gorm.DB
}

func newGormRepository[ID comparable, T common.Tabler](db *gorm.DB) *GormRepository[ID, T] {
	return &GormRepository[ID, T]{db: db}
}

func (g *GormRepository[ID, T]) GetDB(tx *gorm.DB) *gorm.DB {
	if tx == nil {
		return g.db
	}
	return tx
}

func (g *GormRepository[ID, T]) Transaction(fn func(tx *gorm.DB) error) error {
	return g.db.Transaction(fn)
}

func (g *GormRepository[ID, T]) Read(id ID) (T, error) {
	return g.first(nil, "id = ?", id)
}

// first returns the first row matching the condition, gorm.ErrRecordNotFound otherwise.
func (g *GormRepository[ID, T]) first(tx *gorm.DB, query string, args ...any) (T, error) {
	var t T
	err := g.GetDB(tx).Where(query, args...).First(&t).Error
	return t, err
}

func (g *GormRepository[ID, T]) Create(tx *gorm.DB, t *T) error {
	return g.GetDB(tx).Create(t).Error
}

func (g *GormRepository[ID, T]) Save(tx *gorm.DB, t *T) error {
	return g.GetDB(tx).Save(t).Error
}

func (g *GormRepository[ID, T]) Delete(tx *gorm.DB, id ID) error {
	var t T
	return g.GetDB(tx).Where("id = ?", id).Delete(&t).Error
}
