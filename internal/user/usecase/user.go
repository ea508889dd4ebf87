package usecase

import (
	"context"

	"tubeline-api/internal/model"
	"tubeline-api/internal/user"
	"tubeline-api/internal/user/repository"
	"tubeline-api/pkg/encrypter"
)

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip user.GetInput) (user.GetOutput, error) {
	users, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter: repository.Filter{
			IDs:    ip.Filter.IDs,
			Kind:   ip.Filter.Kind,
			Role:   ip.Filter.Role,
			Search: ip.Filter.Search,
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Get: %v", err)
		return user.GetOutput{}, err
	}

	return user.GetOutput{Users: users, Paginator: pag}, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip user.ListInput) ([]model.User, error) {
	users, err := uc.repo.List(ctx, sc, repository.ListOptions{
		Filter: repository.Filter{
			IDs:    ip.Filter.IDs,
			Kind:   ip.Filter.Kind,
			Role:   ip.Filter.Role,
			Search: ip.Filter.Search,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.List: %v", err)
		return nil, err
	}

	return users, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Detail: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}

func (uc *usecase) DetailMe(ctx context.Context, sc model.Scope) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc, sc.UserID)
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.DetailMe: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: usr}, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip user.CreateInput) (user.UserOutput, error) {
	if !sc.IsAdmin() {
		return user.UserOutput{}, user.ErrInsufficientPermission
	}
	if ip.Name == "" || ip.Email == "" {
		return user.UserOutput{}, user.ErrFieldRequired
	}

	role := model.RoleUnknown
	if ip.Kind == model.PrincipalKindFreelancer {
		role = model.ParseRole(ip.Role)
		if role == model.RoleUnknown {
			return user.UserOutput{}, user.ErrInvalidRole
		}
	}

	_, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Email: ip.Email})
	if err == nil {
		return user.UserOutput{}, user.ErrUserExists
	}
	if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.user.usecase.Create.GetOne: %v", err)
		return user.UserOutput{}, err
	}

	usr := model.User{
		Kind:     ip.Kind,
		Role:     role,
		Name:     ip.Name,
		Email:    ip.Email,
		IsActive: true,
	}

	if ip.Phone != "" {
		encPhone, encErr := uc.enc.Encrypt(ip.Phone)
		if encErr != nil {
			uc.l.Errorf(ctx, "internal.user.usecase.Create.Encrypt: %v", encErr)
			return user.UserOutput{}, encErr
		}
		usr.PhoneEncrypted = &encPhone
	}

	if ip.Password != "" {
		hash, hashErr := encrypter.HashPassword(ip.Password)
		if hashErr != nil {
			uc.l.Errorf(ctx, "internal.user.usecase.Create.HashPassword: %v", hashErr)
			return user.UserOutput{}, hashErr
		}
		usr.PasswordHash = &hash
	}

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{User: usr})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Create: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: created}, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip user.UpdateInput) (user.UserOutput, error) {
	if !sc.IsAdmin() {
		return user.UserOutput{}, user.ErrInsufficientPermission
	}

	usr, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Update.Detail: %v", err)
		return user.UserOutput{}, err
	}

	if ip.Name != nil {
		usr.Name = *ip.Name
	}
	if ip.Email != nil {
		usr.Email = *ip.Email
	}
	if ip.Role != nil {
		role := model.ParseRole(*ip.Role)
		if usr.Kind == model.PrincipalKindFreelancer && role == model.RoleUnknown {
			return user.UserOutput{}, user.ErrInvalidRole
		}
		usr.Role = role
	}
	if ip.Phone != nil {
		if *ip.Phone == "" {
			usr.PhoneEncrypted = nil
		} else {
			encPhone, encErr := uc.enc.Encrypt(*ip.Phone)
			if encErr != nil {
				uc.l.Errorf(ctx, "internal.user.usecase.Update.Encrypt: %v", encErr)
				return user.UserOutput{}, encErr
			}
			usr.PhoneEncrypted = &encPhone
		}
	}
	if ip.IsActive != nil {
		usr.IsActive = *ip.IsActive
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{User: usr})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Update: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: updated}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if !sc.IsAdmin() {
		return user.ErrInsufficientPermission
	}

	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			return user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Delete: %v", err)
		return err
	}

	return nil
}
