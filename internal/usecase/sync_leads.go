package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type SyncLeadsUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	CRM      CRMSink

	// Opcionais (nil-safe)
	Mailer         DigestMailer
	SalesTeamEmail string
}

func NewSyncLeadsUseCase(
	leadRepo entity.LeadRepositoryInterface,
	crm CRMSink,
	mailer DigestMailer,
	salesTeamEmail string,
) *SyncLeadsUseCase {
	return &SyncLeadsUseCase{
		LeadRepo:       leadRepo,
		CRM:            crm,
		Mailer:         mailer,
		SalesTeamEmail: salesTeamEmail,
	}
}


// Execute roda uma varredura: busca os Verified ainda não sincronizados,
// empurra cada um pro CRM e só então marca como sincronizado.
// A ordem push -> mark garante at-least-once: preferimos um lead duplicado
// no CRM a um lead perdido.
func (uc *SyncLeadsUseCase) Execute(ctx context.Context) (int, error) {
	leads, err := uc.LeadRepo.FindUnsyncedVerified(ctx)
	if err != nil {
		return 0, err
	}

	synced := []*entity.Lead{}

	for _, lead := range leads {
		if err := uc.CRM.PushLead(ctx, lead); err != nil {
			// Falha individual não derruba a varredura.
			// O lead fica não-sincronizado e volta na próxima rodada.
			log.Printf("❌ [CRM Sync] Falha ao enviar lead %s (%s): %v", lead.Name, lead.ID, err)
			continue
		}

		if err := uc.LeadRepo.MarkSynced(ctx, lead.ID); err != nil {
			log.Printf("⚠️ [CRM Sync] Lead %s enviado mas não marcado: %v", lead.ID, err)
			continue
		}

		log.Printf("✅ [CRM Sync] Lead verificado %s enviado pro time de vendas", lead.Name)
		synced = append(synced, lead)
	}

	if len(synced) > 0 && uc.Mailer != nil && uc.SalesTeamEmail != "" {
		go func() {
			if err := uc.Mailer.SendLeadDigest(uc.SalesTeamEmail, synced); err != nil {
				log.Printf("⚠️ [CRM Sync] Falha ao enviar digest por email: %v", err)
			}
		}()
	}

	return len(synced), nil
}
