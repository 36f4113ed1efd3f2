package model

// Decorator enriches a form model after the definition-derived structure has
// been built.
type Decorator interface {
	Decorate(*FormModel) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*FormModel) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *FormModel) error {
	return fn(form)
}

// Decorators applies each decorator in order, stopping at the first error.
// Nil entries are skipped.
type Decorators []Decorator

// Decorate implements Decorator.
func (ds Decorators) Decorate(form *FormModel) error {
	for _, d := range ds {
		if d == nil {
			continue
		}
		if err := d.Decorate(form); err != nil {
			return err
		}
	}
	return nil
}
