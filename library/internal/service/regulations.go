package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/Astemirdum/e-library/library/internal/model"
)

// Regulations holds the validation bounds admins can change at runtime.
type Regulations struct {
	mu  sync.RWMutex
	cur model.Regulations
}

func NewRegulations() *Regulations {
	return &Regulations{cur: model.DefaultRegulations()}
}

func (r *Regulations) Get() model.Regulations {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cur
}

// Update applies the provided values, keeping the rest.
func (r *Regulations) Update(req model.RegulationsRequest) (model.Regulations, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.cur
	set := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	set(&next.AgeMin, req.AgeMin)
	set(&next.AgeMax, req.AgeMax)
	set(&next.ExpiredMonth, req.ExpiredMonth)
	set(&next.NumberOfBooks, req.NumberOfBooks)
	set(&next.PublicationYear, req.PublicationYear)

	if next.AgeMin > next.AgeMax {
		return r.cur, errs.BadRequest(fmt.Sprintf("ageMin (%d) cannot be greater than ageMax (%d)", next.AgeMin, next.AgeMax))
	}
	r.cur = next
	return next, nil
}

func (r *Regulations) CheckReaderAge(dob, now time.Time) error {
	regs := r.Get()
	if age := model.Age(dob, now); age < regs.AgeMin || age > regs.AgeMax {
		return errs.BadRequest(fmt.Sprintf("Reader age must be between %d and %d", regs.AgeMin, regs.AgeMax))
	}
	return nil
}

func (r *Regulations) CheckPublicationYear(year int, now time.Time) error {
	regs := r.Get()
	if now.Year()-year > regs.PublicationYear {
		return errs.BadRequest(fmt.Sprintf("Only accept books published within the last %d years.", regs.PublicationYear))
	}
	return nil
}

// CheckBookCount rejects adding a book once count reaches the limit.
func (r *Regulations) CheckBookCount(count int) error {
	regs := r.Get()
	if count >= regs.NumberOfBooks {
		return errs.BadRequest(fmt.Sprintf("Number of books must be less than or equal %d", regs.NumberOfBooks))
	}
	return nil
}

func (r *Regulations) ExpiredDate(from time.Time) time.Time {
	return from.AddDate(0, r.Get().ExpiredMonth, 0)
}
